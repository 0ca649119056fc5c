package script

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/poset/builder"
	"github.com/katalvlaran/poset/order"
	"github.com/katalvlaran/poset/registry"
	"github.com/katalvlaran/poset/snapshot"
)

// command is one script verb. arity counts the operands after the verb,
// the poset id included. run returns the text to print, newline terminated.
type command struct {
	arity int
	run   func(r *registry.Registry, id registry.PosetID, args []string) (string, error)
}

const okLine = "ok\n"

var commands = map[string]command{
	"new": {0, func(r *registry.Registry, _ registry.PosetID, _ []string) (string, error) {
		return fmt.Sprintf("%d\n", r.New()), nil
	}},
	"delete": {1, func(r *registry.Registry, id registry.PosetID, _ []string) (string, error) {
		return okLine, r.Delete(id)
	}},
	"size": {1, func(r *registry.Registry, id registry.PosetID, _ []string) (string, error) {
		n, err := r.Size(id)
		return fmt.Sprintf("%d\n", n), err
	}},
	"exists": {1, func(r *registry.Registry, id registry.PosetID, _ []string) (string, error) {
		return strconv.FormatBool(r.Exists(id)) + "\n", nil
	}},
	"clear": {1, func(r *registry.Registry, id registry.PosetID, _ []string) (string, error) {
		return okLine, r.Clear(id)
	}},
	"insert": {2, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		return okLine, r.Insert(id, args[0])
	}},
	"remove": {2, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		return okLine, r.Remove(id, args[0])
	}},
	"add": {3, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		return okLine, r.Add(id, args[0], args[1])
	}},
	"del": {3, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		return okLine, r.Del(id, args[0], args[1])
	}},
	"test": {3, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		ok, err := r.Test(id, args[0], args[1])
		return strconv.FormatBool(ok) + "\n", err
	}},
	"elements": {1, withView(func(v *registry.View) (string, error) {
		return list(v.Elements()), nil
	})},
	"order": {1, withView(func(v *registry.View) (string, error) {
		seq, err := order.LinearExtension(v)
		return list(seq), err
	})},
	"covers": {1, withView(func(v *registry.View) (string, error) {
		pairs, err := order.Covers(v)
		if err != nil {
			return "", err
		}
		edges := make([]string, len(pairs))
		for i, p := range pairs {
			edges[i] = p.Lower + "<" + p.Upper
		}
		return list(edges), nil
	})},
	"dump": {1, withView(func(v *registry.View) (string, error) {
		s := snapshot.FromView(v)
		// Element ids are process-local; keep dumps reproducible.
		for i := range s.Elements {
			s.Elements[i].ID = 0
		}
		var buf bytes.Buffer
		err := snapshot.Encode(&buf, s)
		return buf.String(), err
	})},
	"dot": {1, withView(func(v *registry.View) (string, error) {
		var buf bytes.Buffer
		err := snapshot.WriteDOT(&buf, v, fmt.Sprintf("poset %d", v.ID()))
		return buf.String(), err
	})},
}

// shapes are the builder-backed commands; operands after P are integers,
// except the probability of "random".
var shapes = map[string]command{
	"chain":     {2, withShape(func(n []int) builder.Constructor { return builder.Chain(n[0]) })},
	"antichain": {2, withShape(func(n []int) builder.Constructor { return builder.Antichain(n[0]) })},
	"grid":      {3, withShape(func(n []int) builder.Constructor { return builder.Grid(n[0], n[1]) })},
	"lattice":   {2, withShape(func(n []int) builder.Constructor { return builder.BooleanLattice(n[0]) })},
	"divisors":  {2, withShape(func(n []int) builder.Constructor { return builder.Divisors(n[0]) })},
	"random": {4, func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		n, err := atoi(args[0])
		if err != nil {
			return "", err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a probability", ErrArgs, args[1])
		}
		seed, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q is not a seed", ErrArgs, args[2])
		}
		opts := []builder.BuilderOption{builder.WithSeed(seed)}
		return okLine, builder.Apply(r, id, opts, builder.RandomOrder(n, p))
	}},
}

func init() {
	for name, cmd := range shapes {
		commands[name] = cmd
	}
}

// withShape parses integer operands and applies the resulting constructor.
func withShape(fn func(n []int) builder.Constructor) func(*registry.Registry, registry.PosetID, []string) (string, error) {
	return func(r *registry.Registry, id registry.PosetID, args []string) (string, error) {
		n := make([]int, len(args))
		for i, a := range args {
			v, err := atoi(a)
			if err != nil {
				return "", err
			}
			n[i] = v
		}
		return okLine, builder.Apply(r, id, nil, fn(n))
	}
}

// atoi parses a decimal operand.
func atoi(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrArgs, s)
	}

	return v, nil
}

// withView adapts a read-only handler to a command taking a poset id.
func withView(fn func(v *registry.View) (string, error)) func(*registry.Registry, registry.PosetID, []string) (string, error) {
	return func(r *registry.Registry, id registry.PosetID, _ []string) (string, error) {
		v, err := r.View(id)
		if err != nil {
			return "", err
		}
		return fn(v)
	}
}

// list formats names as "[a b c]".
func list(names []string) string {
	return "[" + strings.Join(names, " ") + "]\n"
}
