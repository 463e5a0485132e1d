package index

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type (
	name   string
	blob   []byte
	point  struct{ X, Y int }
	holder struct{ V any }
	ids    []int
)

func TestHashing(t *testing.T) {
	assert := assert.New(t)

	for _, err := range []error{
		probeHashing[string](),
		probeHashing[name](),
		probeHashing[[]byte](),
		probeHashing[blob](),
		probeHashing[int](),
		probeHashing[bool](),
		probeHashing[float32](),
		probeHashing[point](),
		probeHashing[[4]string](),
		probeHashing[*point](),
		probeHashing[collide](),
	} {
		assert.Nil(err)
	}

	for _, err := range []error{
		probeHashing[ids](),
		probeHashing[func()](),
		probeHashing[map[string]int](),
		probeHashing[any](),
		probeHashing[holder](),
		probeHashing[[2][]int](),
	} {
		assert.ErrorIs(err, ErrNotHashable)
	}
}

func probeHashing[T any]() error {
	_, err := Hashing[T]()
	return err
}

func TestHashingFuncs(t *testing.T) {
	assert := assert.New(t)

	s, _ := Hashing[name]()
	assert.Equal(s.Hash("abc"), s.Hash(name([]byte("abc"))))
	assert.True(s.Equal("abc", "abc"))
	assert.False(s.Equal("abc", "abd"))

	b, _ := Hashing[blob]()
	assert.Equal(b.Hash(blob{1, 2, 3}), b.Hash(blob{1, 2, 3}))
	assert.True(b.Equal(blob{1, 2, 3}, blob{1, 2, 3}))
	assert.True(b.Equal(nil, blob{}))
	assert.False(b.Equal(blob{1, 2}, blob{1, 2, 3}))

	p, _ := Hashing[point]()
	assert.Equal(p.Hash(point{1, 2}), p.Hash(point{1, 2}))
	assert.True(p.Equal(point{1, 2}, point{1, 2}))
	assert.False(p.Equal(point{1, 2}, point{2, 1}))

	// floats agree with cmp.Compare: NaN is equal to NaN, -0 to +0
	f, _ := Hashing[float64]()
	nan := math.NaN()
	assert.True(f.Equal(nan, nan))
	assert.Equal(f.Hash(nan), f.Hash(math.Float64frombits(0x7ff8000000000042)))
	assert.True(f.Equal(math.Copysign(0, -1), 0))
	assert.Equal(f.Hash(math.Copysign(0, -1)), f.Hash(0))
	assert.False(f.Equal(1.5, 2.5))

	f32, _ := Hashing[float32]()
	assert.Equal(f32.Hash(1.5), f32.Hash(1.5))
	assert.True(f32.Equal(float32(nan), float32(nan)))
}

func TestOrdering(t *testing.T) {
	assert := assert.New(t)

	for _, err := range []error{
		probeOrdering[string](),
		probeOrdering[name](),
		probeOrdering[[]byte](),
		probeOrdering[blob](),
		probeOrdering[int](),
		probeOrdering[int8](),
		probeOrdering[uint64](),
		probeOrdering[uintptr](),
		probeOrdering[float32](),
		probeOrdering[float64](),
		probeOrdering[collide](),
	} {
		assert.Nil(err)
	}

	for _, err := range []error{
		probeOrdering[bool](),
		probeOrdering[point](),
		probeOrdering[ids](),
		probeOrdering[func()](),
		probeOrdering[any](),
		probeOrdering[*int](),
		probeOrdering[complex128](),
	} {
		assert.ErrorIs(err, ErrNotOrdered)
	}

	cmpName, _ := Ordering[name]()
	assert.Equal(cmpName("a", "b"), -1)
	assert.Equal(cmpName("b", "a"), 1)
	assert.Equal(cmpName("a", "a"), 0)

	cmpBlob, _ := Ordering[blob]()
	assert.Equal(cmpBlob(blob{1}, blob{1, 0}), -1)
	assert.Equal(cmpBlob(nil, blob{}), 0)

	cmpInt, _ := Ordering[int16]()
	assert.Equal(cmpInt(-5, 3), -1)

	cmpFloat, _ := Ordering[float64]()
	assert.Equal(cmpFloat(math.NaN(), math.NaN()), 0)
	assert.Equal(cmpFloat(math.NaN(), math.Inf(-1)), -1)
}

func probeOrdering[T any]() error {
	_, err := Ordering[T]()
	return err
}

func TestCloning(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Cloning[int]())
	assert.Nil(Cloning[point]())

	cb := Cloning[blob]()
	src := blob{1, 2, 3}
	dst := cb(src)
	src[0] = 9
	assert.Equal(dst, blob{1, 2, 3})

	cs := Cloning[name]()
	assert.Equal(cs("hello"), name("hello"))
}
