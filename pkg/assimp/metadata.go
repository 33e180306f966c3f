package assimp

/*
#include <limits.h>
#include <assimp/types.h>
#include <assimp/metadata.h>
*/
import "C"

import (
	"fmt"
	"iter"
	"unsafe"
)

// MetaType is the type tag of a metadata value.
type MetaType uint32

const (
	MetaBool    = MetaType(C.AI_BOOL)
	MetaInt32   = MetaType(C.AI_INT32)
	MetaUInt64  = MetaType(C.AI_UINT64)
	MetaFloat32 = MetaType(C.AI_FLOAT)
	MetaVector3 = MetaType(C.AI_AIVECTOR3D)
	MetaString  = MetaType(C.AI_AISTRING)
)

// MetaValue is one decoded metadata value. Type selects which of the
// payload fields is meaningful; the others are zero.
type MetaValue struct {
	Type    MetaType
	Bool    bool
	Int32   int32
	UInt64  uint64
	Float32 float32
	Vector3 Vector3
	// String borrows engine memory, like every other view.
	String string
}

// Value returns the meaningful payload field as an any.
func (v MetaValue) Value() any {
	switch v.Type {
	case MetaBool:
		return v.Bool
	case MetaInt32:
		return v.Int32
	case MetaUInt64:
		return v.UInt64
	case MetaFloat32:
		return v.Float32
	case MetaVector3:
		return v.Vector3
	case MetaString:
		return v.String
	default:
		return nil
	}
}

// decodeMetaEntry decodes one tagged payload. A tag outside the closed
// domain means the foreign data is undefined; that is a contract
// violation, not a representable value.
func decodeMetaEntry(e *C.struct_aiMetadataEntry) MetaValue {
	d := e.mData
	switch e.mType {
	case C.AI_BOOL:
		return MetaValue{Type: MetaBool, Bool: *(*byte)(d) != 0}
	case C.AI_INT32:
		return MetaValue{Type: MetaInt32, Int32: *(*int32)(d)}
	case C.AI_UINT64:
		return MetaValue{Type: MetaUInt64, UInt64: *(*uint64)(d)}
	case C.AI_FLOAT:
		return MetaValue{Type: MetaFloat32, Float32: *(*float32)(d)}
	case C.AI_AIVECTOR3D:
		return MetaValue{Type: MetaVector3, Vector3: *(*Vector3)(d)}
	case C.AI_AISTRING:
		return MetaValue{Type: MetaString, String: str((*C.struct_aiString)(d))}
	default:
		panic(fmt.Sprintf("assimp: unrecognized metadata type tag %d", uint32(e.mType)))
	}
}

// Metadata is a borrowed view of a key-value store held as parallel
// key and value arrays of equal length.
type Metadata struct {
	c *C.struct_aiMetadata
}

// metadataAt views the metadata block at p. The caller guarantees the
// memory is laid out like an engine metadata record.
func metadataAt(p unsafe.Pointer) Metadata {
	return newMetadata((*C.struct_aiMetadata)(p))
}

// Engine record sizes, pinned for layout verification of hand-built
// blocks.
var (
	metadataRecordSize = unsafe.Sizeof(C.struct_aiMetadata{})
	metadataEntrySize  = unsafe.Sizeof(C.struct_aiMetadataEntry{})
	stringRecordSize   = unsafe.Sizeof(C.struct_aiString{})
)

func newMetadata(p *C.struct_aiMetadata) Metadata {
	if p == nil {
		panic("assimp: nil metadata pointer")
	}
	if p.mNumProperties > 0 && (p.mKeys == nil || p.mValues == nil) {
		panic("assimp: metadata with nil key or value array")
	}
	return Metadata{c: p}
}

// Len returns the raw number of key/value pairs, including entries
// with an empty payload that All skips.
func (m Metadata) Len() int {
	return int(m.c.mNumProperties)
}

// All returns a restartable iterator over the decoded pairs in store
// order. Entries whose value payload is missing are skipped rather
// than yielded with a hole. Duplicate keys are all yielded.
func (m Metadata) All() iter.Seq2[string, MetaValue] {
	return func(yield func(string, MetaValue) bool) {
		n := uint32(m.c.mNumProperties)
		keys := borrow[C.struct_aiString](unsafe.Pointer(m.c.mKeys), n)
		vals := borrow[C.struct_aiMetadataEntry](unsafe.Pointer(m.c.mValues), n)
		for i := range vals {
			if vals[i].mData == nil {
				continue
			}
			if !yield(str(&keys[i]), decodeMetaEntry(&vals[i])) {
				return
			}
		}
	}
}

// Get returns the value of the first pair in iteration order whose key
// equals key, ok=false if there is none.
func (m Metadata) Get(key string) (MetaValue, bool) {
	for k, v := range m.All() {
		if k == key {
			return v, true
		}
	}
	return MetaValue{}, false
}
