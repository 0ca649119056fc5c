package idgen

import (
	"strconv"
	"sync/atomic"
)

// ElementID identifies one element across the whole process lifetime.
type ElementID uint64

// Invalid is the reserved "no element" handle.
const Invalid ElementID = 0

// String renders the id as a plain decimal number.
func (id ElementID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Valid reports whether id could have been issued by NextElement.
func (id ElementID) Valid() bool {
	return id != Invalid
}

// lastElement holds the most recently issued ElementID (atomic).
var lastElement uint64

// NextElement returns a fresh ElementID, strictly greater than every id
// returned before it in this process.
// Complexity: O(1).
func NextElement() ElementID {
	return ElementID(atomic.AddUint64(&lastElement, 1))
}

// LastElement reports the most recently issued ElementID, or Invalid if none
// was issued yet. Useful for diagnostics only: by the time the caller reads
// it another goroutine may have allocated more.
func LastElement() ElementID {
	return ElementID(atomic.LoadUint64(&lastElement))
}

// Sequence is a monotonically increasing counter starting at 0.
// The zero value is ready to use. A Sequence must not be copied after first use.
type Sequence struct {
	next uint64 // atomic; the value the next call to Next returns
}

// Next returns the current value and advances the sequence.
// Complexity: O(1).
func (s *Sequence) Next() uint64 {
	return atomic.AddUint64(&s.next, 1) - 1
}

// Peek returns the value the next call to Next would return.
func (s *Sequence) Peek() uint64 {
	return atomic.LoadUint64(&s.next)
}
