package registry

import "fmt"

// Call names carried in the "op" field of trace events.
const (
	opNew    = "new"
	opDelete = "delete"
	opSize   = "size"
	opInsert = "insert"
	opRemove = "remove"
	opAdd    = "add"
	opDel    = "del"
	opTest   = "test"
	opClear  = "clear"
)

// trace emits one debug event for a finished call.
// args are the element names the call received, in order.
func (r *Registry) trace(op string, id PosetID, err error, msg string, args ...string) {
	ev := r.log.Debug()
	if !ev.Enabled() {
		return
	}
	ev = ev.Str("op", op).Uint64("poset", uint64(id))
	if len(args) > 0 {
		ev = ev.Strs("args", args)
	}
	if err != nil {
		ev = ev.AnErr("reason", err)
	}
	ev.Msg(msg)
}

// Outcome messages. They read the same whether or not the call succeeded so a
// trace can be followed without looking at return values.

func msgPosetMissing(id PosetID) string {
	return fmt.Sprintf("poset %d does not exist", id)
}

func msgElementMissing(id PosetID, name string) string {
	return fmt.Sprintf("poset %d, element %q does not exist", id, name)
}

func msgElement(id PosetID, name, what string) string {
	return fmt.Sprintf("poset %d, element %q %s", id, name, what)
}

func msgRelation(id PosetID, a, b, what string) string {
	return fmt.Sprintf("poset %d, relation (%q, %q) %s", id, a, b, what)
}
