package index

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const MAX = 10000

func FuzzHashOrdered(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte{})
	f.Add([]byte{0, 1, 2})

	stdmap := make(map[string]uint32, MAX)
	htable := new(table[[]byte])
	otable := new(table[[]byte])

	hfn, _ := Hashing[[]byte]()
	ocmp, _ := Ordering[[]byte]()
	hidx := NewHash(8, hfn, htable.at)
	oidx := NewOrdered(ocmp, otable.at)

	f.Fuzz(func(t *testing.T, key []byte) {
		ast := assert.New(t)
		key = bytes.Clone(key)
		if len(stdmap) > MAX {
			return
		}
		want, ok := stdmap[string(key)]
		if !ok {
			want = uint32(len(stdmap))
			stdmap[string(key)] = want
		}
		ast.Equal(want, htable.put(hidx, key))
		ast.Equal(want, otable.put(oidx, key))
		ast.Equal(len(stdmap), hidx.Len())
		ast.Equal(len(stdmap), oidx.Len())
	})
}
