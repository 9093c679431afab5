package partition

import "github.com/RoaringBitmap/roaring/v2"

// freeIndex holds the 0-based positions of free partitions.
type freeIndex struct {
	bm *roaring.Bitmap
}

func newFreeIndex(n int) freeIndex {
	bm := roaring.New()
	bm.AddRange(0, uint64(n))
	return freeIndex{bm: bm}
}

func (f freeIndex) markFree(pos int) { f.bm.Add(uint32(pos)) }

func (f freeIndex) markUsed(pos int) { f.bm.Remove(uint32(pos)) }

func (f freeIndex) isFree(pos int) bool { return f.bm.Contains(uint32(pos)) }

func (f freeIndex) count() int { return int(f.bm.GetCardinality()) }

// each visits free positions in ascending order until fn returns false.
func (f freeIndex) each(fn func(pos int) bool) {
	it := f.bm.Iterator()
	for it.HasNext() {
		if !fn(int(it.Next())) {
			return
		}
	}
}
