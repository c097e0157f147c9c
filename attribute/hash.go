package attribute

import (
	"hash"
	"hash/fnv"
	"math"
)

// fnvHash adapts an FNV-1a hash.Hash64 with small fixed-width write
// helpers so writeHash/writeAttr below read as plain sequential encoding.
type fnvHash struct {
	h hash.Hash64
}

func (f *fnvHash) write(p []byte) {
	f.h.Write(p)
}

func (f *fnvHash) writeUint64(v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	f.h.Write(buf[:])
}

// Hash computes a structure-aware deep hash of the set's effective
// attribute chain, used as the layout cache key (spec 4.1's deep hash
// query). Two sets that are Equal always hash equally: references hash
// by group name, matching Equal's group-based semantics, and parents are
// folded in recursively.
func (s Set) Hash() uint64 {
	f := &fnvHash{h: fnv.New64a()}
	s.writeHash(f)
	return f.h.Sum64()
}

func (s Set) writeHash(h *fnvHash) {
	if s.Parent != nil {
		h.write([]byte{'P'})
		s.Parent.writeHash(h)
	}
	h.writeUint64(uint64(len(s.Own)))
	for _, a := range s.Own {
		s.writeAttr(h, a)
	}
}

func (s Set) writeAttr(h *fnvHash, a Attribute) {
	h.writeUint64(uint64(a.Kind))
	if a.Kind == KindSetReference {
		h.write([]byte(s.groupOf(a.Ref)))
		return
	}
	h.writeUint64(uint64(math.Float32bits(a.Scalar)))
	h.writeUint64(uint64(a.Int))
	h.write([]byte(a.Text))
	h.writeUint64(uint64(a.Enum))
	h.write([]byte(a.Feature.Tag))
	h.writeUint64(uint64(a.Feature.Value))
}
