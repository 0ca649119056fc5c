package registry_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poset/registry"
)

// ExampleRegistry builds a three-element chain and shows which deletions the
// closure allows.
func ExampleRegistry() {
	r := registry.New()
	p := r.New()
	for _, n := range []string{"a", "b", "c"} {
		_ = r.Insert(p, n)
	}
	_ = r.Add(p, "a", "b")
	_ = r.Add(p, "b", "c")

	ac, _ := r.Test(p, "a", "c")
	fmt.Println("a ≤ c derived:", ac)

	err := r.Del(p, "a", "c")
	fmt.Println("del(a,c) implied:", errors.Is(err, registry.ErrRelationImplied))

	fmt.Println("del(a,b):", r.Del(p, "a", "b"))
	ac, _ = r.Test(p, "a", "c")
	fmt.Println("a ≤ c kept:", ac)

	// Output:
	// a ≤ c derived: true
	// del(a,c) implied: true
	// del(a,b): <nil>
	// a ≤ c kept: true
}
