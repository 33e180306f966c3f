package assimp

import (
	"testing"
	"unsafe"
)

// Go-side mirrors of the engine's metadata records, laid out
// identically so blocks can be assembled without engine allocation.
type metaString struct {
	length uint32
	data   [1024]byte
}

func (s *metaString) set(v string) {
	s.length = uint32(copy(s.data[:len(s.data)-1], v))
}

type metaEntry struct {
	typ  MetaType
	data unsafe.Pointer
}

type metaBlock struct {
	num    uint32
	keys   *metaString
	values *metaEntry
}

// buildMetadata assembles a metadata block from parallel key and entry
// arrays, verifying the mirror layout against the engine records first.
func buildMetadata(t *testing.T, keys []string, entries []metaEntry) Metadata {
	t.Helper()

	if unsafe.Sizeof(metaString{}) != stringRecordSize ||
		unsafe.Sizeof(metaEntry{}) != metadataEntrySize ||
		unsafe.Sizeof(metaBlock{}) != metadataRecordSize {
		t.Fatal("metadata mirror layout drifted from the engine records")
	}

	ks := make([]metaString, len(keys))
	for i, k := range keys {
		ks[i].set(k)
	}
	block := &metaBlock{
		num:    uint32(len(keys)),
		keys:   &ks[0],
		values: &entries[0],
	}
	return metadataAt(unsafe.Pointer(block))
}

func TestMetadataSkipsEmptyEntries(t *testing.T) {
	upAxis := int32(1)
	scale := float32(0.01)
	rigged := byte(1)
	gen := metaString{}
	gen.set("obj importer")

	md := buildMetadata(t,
		[]string{"UpAxis", "UnitScale", "ScaleFactor", "Rigged", "Generator"},
		[]metaEntry{
			{typ: MetaInt32, data: unsafe.Pointer(&upAxis)},
			{typ: MetaFloat32, data: nil},
			{typ: MetaFloat32, data: unsafe.Pointer(&scale)},
			{typ: MetaBool, data: unsafe.Pointer(&rigged)},
			{typ: MetaString, data: unsafe.Pointer(&gen)},
		})

	if md.Len() != 5 {
		t.Fatalf("expected raw length 5, got %d", md.Len())
	}

	// The entry without a payload is skipped; the rest keep their
	// relative order.
	var keys []string
	var vals []MetaValue
	for k, v := range md.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	wantKeys := []string{"UpAxis", "ScaleFactor", "Rigged", "Generator"}
	if len(keys) != len(wantKeys) {
		t.Fatalf("expected %d yielded pairs, got %d (%v)", len(wantKeys), len(keys), keys)
	}
	for i, want := range wantKeys {
		if keys[i] != want {
			t.Errorf("pair %d: expected key %q, got %q", i, want, keys[i])
		}
	}

	if vals[0].Int32 != 1 {
		t.Errorf("UpAxis: expected 1, got %d", vals[0].Int32)
	}
	if vals[1].Float32 != 0.01 {
		t.Errorf("ScaleFactor: expected 0.01, got %v", vals[1].Float32)
	}
	if !vals[2].Bool {
		t.Error("Rigged: expected true")
	}
	if vals[3].String != "obj importer" {
		t.Errorf("Generator: expected obj importer, got %q", vals[3].String)
	}
}

func TestMetadataRestartable(t *testing.T) {
	a, b := int32(1), int32(2)
	md := buildMetadata(t,
		[]string{"First", "Second"},
		[]metaEntry{
			{typ: MetaInt32, data: unsafe.Pointer(&a)},
			{typ: MetaInt32, data: unsafe.Pointer(&b)},
		})

	seq := md.All()
	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	if first := count(); first != 2 {
		t.Fatalf("first iteration yielded %d pairs", first)
	}
	if second := count(); second != 2 {
		t.Errorf("second iteration yielded %d pairs", second)
	}
}

func TestMetadataGet(t *testing.T) {
	first, dup := int32(10), int32(20)
	md := buildMetadata(t,
		[]string{"Axis", "Missing", "Axis"},
		[]metaEntry{
			{typ: MetaInt32, data: unsafe.Pointer(&first)},
			{typ: MetaInt32, data: nil},
			{typ: MetaInt32, data: unsafe.Pointer(&dup)},
		})

	// Duplicate keys resolve to the first yielded occurrence.
	got, ok := md.Get("Axis")
	if !ok {
		t.Fatal("expected a value for Axis")
	}
	if got.Int32 != 10 {
		t.Errorf("expected first occurrence 10, got %d", got.Int32)
	}

	// A key whose only entry has no payload is absent.
	if _, ok := md.Get("Missing"); ok {
		t.Error("expected absence for key with empty payload")
	}
	if _, ok := md.Get("NoSuchKey"); ok {
		t.Error("expected absence for unknown key")
	}
}

func TestMetadataAbsent(t *testing.T) {
	scene := importBoxes(t, 0)

	// OBJ carries no node metadata; absence reports ok=false rather
	// than an empty block.
	if _, ok := scene.RootNode().Metadata(); ok {
		t.Skip("importer attached node metadata")
	}
}

func TestMetaValueValue(t *testing.T) {
	tests := []struct {
		val  MetaValue
		want any
	}{
		{MetaValue{Type: MetaBool, Bool: true}, true},
		{MetaValue{Type: MetaInt32, Int32: -7}, int32(-7)},
		{MetaValue{Type: MetaUInt64, UInt64: 9}, uint64(9)},
		{MetaValue{Type: MetaFloat32, Float32: 1.5}, float32(1.5)},
		{MetaValue{Type: MetaVector3, Vector3: Vector3{1, 2, 3}}, Vector3{1, 2, 3}},
		{MetaValue{Type: MetaString, String: "up_axis"}, "up_axis"},
	}

	for _, tt := range tests {
		if got := tt.val.Value(); got != tt.want {
			t.Errorf("Value() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
		}
	}
}
