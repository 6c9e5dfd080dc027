package helpers

import "reflect"

// StrPanic panics with panicMessage when p is the empty string, otherwise
// returns p unchanged. Constructors use it to fail fast on required string
// dependencies (group names, prefixes) instead of limping along.
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage when v is nil (including typed nil
// pointers, slices, maps, chans, funcs and interfaces), otherwise returns v
// with its type preserved. Every constructor in this module guards its
// required dependencies with it.
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil reports whether v is nil, using reflect for kinds where a plain
// v == nil comparison is not enough (typed nils).
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
