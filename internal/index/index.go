// Package index is the backward half of an intern pool: it maps a value to
// the token it was first stored under.
//
// Indexes never hold a copy of a value. They keep tokens and resolve them
// through an accessor into the forward store, so every value lives in
// exactly one place.
package index

// Index is implemented by Hash and Ordered.
type Index[T any] interface {
	// Lookup returns the token of a value equal to v.
	Lookup(v T) (uint32, bool)

	// Record associates v with tok. v must already be resolvable through
	// the accessor under tok and must not have been recorded before.
	Record(v T, tok uint32)

	// Len returns the number of recorded values.
	Len() int
}

var (
	_ Index[string] = (*Hash[string])(nil)
	_ Index[string] = (*Ordered[string])(nil)
)

// Accessor resolves an issued token to its stored value.
type Accessor[T any] func(tok uint32) T
