package index

import (
	"github.com/zyedidia/generic/btree"
)

// probeSlot is a tree key that never names a stored value. Lookup parks
// the value being searched for behind it.
const probeSlot = uint64(1) << 32

// Ordered is an index over a btree of token slots, ordered by the values
// the slots resolve to.
type Ordered[T any] struct {
	tree    *btree.Tree[uint64, uint32]
	compare func(a, b T) int
	at      Accessor[T]
	probe   T
}

func NewOrdered[T any](compare func(a, b T) int, at Accessor[T]) *Ordered[T] {
	o := &Ordered[T]{compare: compare, at: at}
	o.tree = btree.New[uint64, uint32](o.less)
	return o
}

func (o *Ordered[T]) value(slot uint64) T {
	if slot == probeSlot {
		return o.probe
	}
	return o.at(uint32(slot))
}

func (o *Ordered[T]) less(a, b uint64) bool {
	return o.compare(o.value(a), o.value(b)) < 0
}

func (o *Ordered[T]) Lookup(v T) (uint32, bool) {
	var zero T
	o.probe = v
	tok, ok := o.tree.Get(probeSlot)
	o.probe = zero
	return tok, ok
}

func (o *Ordered[T]) Record(_ T, tok uint32) {
	o.tree.Put(uint64(tok), tok)
}

func (o *Ordered[T]) Len() int { return o.tree.Size() }

// Ascend calls fn for every recorded token in ascending value order until
// fn returns false.
func (o *Ordered[T]) Ascend(fn func(tok uint32) bool) {
	stop := false
	o.tree.Each(func(_ uint64, tok uint32) {
		if !stop && !fn(tok) {
			stop = true
		}
	})
}
