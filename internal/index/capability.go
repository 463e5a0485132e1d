package index

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"hash/maphash"
	"math"
	"reflect"
	"strings"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

var (
	ErrNotHashable = errors.New("type has no hash consistent with equality")
	ErrNotOrdered  = errors.New("type has no total order")
)

// Hasher is implemented by types that hash themselves. Hash must agree with
// Equal: a.Equal(b) implies a.Hash() == b.Hash().
type Hasher[T any] interface {
	Hash() uint64
	Equal(T) bool
}

// Comparer is implemented by types that order themselves. Compare returns
// 0 exactly when the values are equal.
type Comparer[T any] interface {
	Compare(T) int
}

// Funcs is the hashing capability of a type.
type Funcs[T any] struct {
	Hash  func(v T) uint64
	Equal func(a, b T) bool
}

// canonical NaN, so every NaN hashes alike.
const nanBits = 0x7ff8000000000001

// Hashing probes T for a hash consistent with equality.
func Hashing[T any]() (Funcs[T], error) {
	t := reflect.TypeFor[T]()

	if t.Kind() != reflect.Interface && t.Implements(reflect.TypeFor[Hasher[T]]()) {
		return Funcs[T]{
			Hash:  func(v T) uint64 { return any(v).(Hasher[T]).Hash() },
			Equal: func(a, b T) bool { return any(a).(Hasher[T]).Equal(b) },
		}, nil
	}

	switch {
	case t.Kind() == reflect.String:
		return Funcs[T]{
			Hash:  func(v T) uint64 { return xxhash.Sum64String(as[string](&v)) },
			Equal: func(a, b T) bool { return as[string](&a) == as[string](&b) },
		}, nil

	case isBytes(t):
		return Funcs[T]{
			Hash:  func(v T) uint64 { return xxhash.Sum64(as[[]byte](&v)) },
			Equal: func(a, b T) bool { return bytes.Equal(as[[]byte](&a), as[[]byte](&b)) },
		}, nil

	case t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64:
		seed := maphash.MakeSeed()
		float := floatOf[T](t)
		return Funcs[T]{
			Hash:  func(v T) uint64 { return floatHash(seed, float(&v)) },
			Equal: func(a, b T) bool { return cmp.Compare(float(&a), float(&b)) == 0 },
		}, nil

	case strictlyComparable(t):
		seed := maphash.MakeSeed()
		return Funcs[T]{
			Hash:  func(v T) uint64 { return maphash.Comparable[any](seed, v) },
			Equal: func(a, b T) bool { return any(a) == any(b) },
		}, nil
	}

	return Funcs[T]{}, fmt.Errorf("%w: %v", ErrNotHashable, t)
}

// Ordering probes T for a total order consistent with equality.
func Ordering[T any]() (func(a, b T) int, error) {
	t := reflect.TypeFor[T]()

	if t.Kind() != reflect.Interface && t.Implements(reflect.TypeFor[Comparer[T]]()) {
		return func(a, b T) int { return any(a).(Comparer[T]).Compare(b) }, nil
	}

	switch t.Kind() {
	case reflect.Int:
		return compareAs[T, int], nil
	case reflect.Int8:
		return compareAs[T, int8], nil
	case reflect.Int16:
		return compareAs[T, int16], nil
	case reflect.Int32:
		return compareAs[T, int32], nil
	case reflect.Int64:
		return compareAs[T, int64], nil
	case reflect.Uint:
		return compareAs[T, uint], nil
	case reflect.Uint8:
		return compareAs[T, uint8], nil
	case reflect.Uint16:
		return compareAs[T, uint16], nil
	case reflect.Uint32:
		return compareAs[T, uint32], nil
	case reflect.Uint64:
		return compareAs[T, uint64], nil
	case reflect.Uintptr:
		return compareAs[T, uintptr], nil
	case reflect.Float32:
		return compareAs[T, float32], nil
	case reflect.Float64:
		return compareAs[T, float64], nil
	case reflect.String:
		return compareAs[T, string], nil
	case reflect.Slice:
		if isBytes(t) {
			return func(a, b T) int { return bytes.Compare(as[[]byte](&a), as[[]byte](&b)) }, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrNotOrdered, t)
}

// Cloning returns a func that detaches a value from caller memory before it
// is stored, or nil when values of T can be stored as they are.
func Cloning[T any]() func(T) T {
	t := reflect.TypeFor[T]()

	switch {
	case t.Kind() == reflect.String:
		return func(v T) T {
			s := strings.Clone(as[string](&v))
			return as[T](&s)
		}
	case isBytes(t):
		return func(v T) T {
			b := bytes.Clone(as[[]byte](&v))
			return as[T](&b)
		}
	}
	return nil
}

// as reinterprets *v as an O. Callers guarantee identical underlying types.
func as[O, T any](v *T) O {
	return *(*O)(unsafe.Pointer(v))
}

func compareAs[T any, O constraints.Ordered](a, b T) int {
	return cmp.Compare(as[O](&a), as[O](&b))
}

func isBytes(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func floatOf[T any](t reflect.Type) func(v *T) float64 {
	if t.Kind() == reflect.Float32 {
		return func(v *T) float64 { return float64(as[float32](v)) }
	}
	return func(v *T) float64 { return as[float64](v) }
}

func floatHash(seed maphash.Seed, f float64) uint64 {
	bits := math.Float64bits(f)
	switch {
	case f != f:
		bits = nanBits
	case f == 0:
		bits = 0
	}
	return maphash.Comparable(seed, bits)
}

// strictlyComparable reports whether == on values of t can never panic.
// Interfaces are excluded since their dynamic type is unknown until runtime.
func strictlyComparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
