package builder_test

import (
	"fmt"

	"github.com/katalvlaran/poset/builder"
	"github.com/katalvlaran/poset/order"
	"github.com/katalvlaran/poset/registry"
)

func ExampleDivisors() {
	r := registry.New()
	id, _ := builder.Build(r, nil, builder.Divisors(18))
	v, _ := r.View(id)

	covers, _ := order.Covers(v)
	fmt.Println(covers)

	// Output:
	// [{1 2} {1 3} {2 6} {3 6} {3 9} {6 18} {9 18}]
}
