package intern

// Strings returns a new hash-backed pool of strings.
func Strings() *Pool[string] {
	return mustBuild(NewBuilder[string]())
}

// Bytes returns a new hash-backed pool of byte slices. Interned slices are
// copied, so callers may reuse their buffers.
func Bytes() *Pool[[]byte] {
	return mustBuild(NewBuilder[[]byte]())
}

// mustBuild is for configurations that cannot fail.
func mustBuild[T any](b *Builder[T]) *Pool[T] {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
