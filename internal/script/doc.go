// Package script runs line-oriented poset command scripts against a
// registry.Registry. It backs the posetctl CLI and doubles as a compact way
// to write scenario tests.
//
// One command per line, fields separated by blanks; blank lines and lines
// starting with '#' are skipped. P is a poset id as printed by "new".
//
//	new                 create a poset, print its id
//	delete P            delete a poset
//	size P              print the number of elements
//	exists P            print true or false
//	clear P             drop every element
//	insert P x          add element x
//	remove P x          remove element x and its relations
//	add P x y           record x ≤ y
//	del P x y           drop x ≤ y
//	test P x y          print whether x ≤ y holds
//	elements P          print the element names
//	order P             print a linear extension
//	covers P            print the Hasse diagram edges as x<y
//	dump P              print a YAML snapshot (multi-line)
//	dot P               print a Graphviz digraph (multi-line)
//
// Shape commands add a whole fixture to P (see package builder):
//
//	chain P n           n-element chain named 0..n-1
//	antichain P n       n incomparable elements
//	grid P r c          r×c product order, elements "i,j"
//	lattice P k         subsets of a k-set as bit strings
//	divisors P n        divisors of n under divisibility
//	random P n p seed   random order, each i<j requested with probability p
//
// Commands that change state print "ok". A failed operation prints
// "error: " followed by the error text; the script keeps going.
package script
