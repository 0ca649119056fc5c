// Package flat is the flat function-call boundary over one process-wide
// registry: plain integer handles in, booleans and counts out, no errors.
//
//	New() uint64                            fresh poset id
//	Delete(id)                              silent on unknown id
//	Size(id) int                            0 on unknown id
//	Insert(id, value) bool                  Remove(id, value) bool
//	Add(id, value1, value2) bool            Del(id, value1, value2) bool
//	Test(id, value1, value2) bool           false if absent or unknown
//	Clear(id)                               silent on unknown id
//
// Names are *string: a nil name is rejected without being dereferenced and
// simply fails the call. The empty string is an ordinary name.
//
// Size cannot tell an unknown poset from an empty one; Exists answers that
// question for callers that need it.
//
// The registry behind this package is built on first use. Setting
// POSET_TRACE=true (see package config) makes it write one trace line per
// call to stderr; tracing never changes a return value. Go code that does not
// need this boundary should construct its own registry.Registry instead.
package flat
