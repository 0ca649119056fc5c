package flat

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/poset/config"
	"github.com/katalvlaran/poset/logging"
	"github.com/katalvlaran/poset/registry"
)

var (
	once   sync.Once
	reg    *registry.Registry
	tracer zerolog.Logger
)

// instance returns the process registry, building it on first use.
func instance() *registry.Registry {
	once.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.Default()
		}
		l, err := logging.New(cfg, os.Stderr)
		if err != nil {
			l = zerolog.Nop()
		}
		use(registry.New(registry.WithLogger(logging.Component(l, "flat"))), l)
	})

	return reg
}

// use installs r as the process registry and l as the tracer for argument
// rejections.
func use(r *registry.Registry, l zerolog.Logger) {
	reg = r
	tracer = logging.Component(l, "flat")
}

// Registry returns the process registry behind this package, for Go callers
// that want the richer API (views, snapshots) on posets created here.
func Registry() *registry.Registry {
	return instance()
}

// New creates an empty poset and returns its id.
func New() uint64 {
	return uint64(instance().New())
}

// Delete discards the poset. Unknown ids are ignored.
func Delete(id uint64) {
	_ = instance().Delete(registry.PosetID(id))
}

// Size returns the number of elements, or 0 for an unknown id.
func Size(id uint64) int {
	n, _ := instance().Size(registry.PosetID(id))
	return n
}

// Exists reports whether id names a live poset.
func Exists(id uint64) bool {
	return instance().Exists(registry.PosetID(id))
}

// Insert adds an element. Fails on nil value, unknown id or taken name.
func Insert(id uint64, value *string) bool {
	r := instance()
	if rejectNil("insert", id, value) {
		return false
	}

	return r.Insert(registry.PosetID(id), *value) == nil
}

// Remove deletes an element and every relation mentioning it.
func Remove(id uint64, value *string) bool {
	r := instance()
	if rejectNil("remove", id, value) {
		return false
	}

	return r.Remove(registry.PosetID(id), *value) == nil
}

// Add records value1 ≤ value2 and extends the closure.
func Add(id uint64, value1, value2 *string) bool {
	r := instance()
	if rejectNil("add", id, value1, value2) {
		return false
	}

	return r.Add(registry.PosetID(id), *value1, *value2) == nil
}

// Del drops value1 ≤ value2 when no third element lies between them.
func Del(id uint64, value1, value2 *string) bool {
	r := instance()
	if rejectNil("del", id, value1, value2) {
		return false
	}

	return r.Del(registry.PosetID(id), *value1, *value2) == nil
}

// Test reports whether value1 ≤ value2 holds. Any failure reads as false.
func Test(id uint64, value1, value2 *string) bool {
	r := instance()
	if rejectNil("test", id, value1, value2) {
		return false
	}
	ok, _ := r.Test(registry.PosetID(id), *value1, *value2)

	return ok
}

// Clear drops every element of the poset. Unknown ids are ignored.
func Clear(id uint64) {
	_ = instance().Clear(registry.PosetID(id))
}

// rejectNil reports whether any value is nil, tracing each nil one as
// "invalid value (NULL)" or "invalid valueN (NULL)".
func rejectNil(op string, id uint64, values ...*string) bool {
	rejected := false
	for i, v := range values {
		if v != nil {
			continue
		}
		rejected = true
		param := "value"
		if len(values) > 1 {
			param = fmt.Sprintf("value%d", i+1)
		}
		tracer.Debug().Str("op", op).Uint64("poset", id).Msgf("invalid %s (NULL)", param)
	}

	return rejected
}
