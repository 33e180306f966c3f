package assimp

import (
	"testing"
	"unsafe"
)

func TestBorrowNilAndEmpty(t *testing.T) {
	buf := []float32{1, 2, 3}

	if s := borrow[float32](nil, 3); s != nil {
		t.Error("nil pointer should yield a nil slice")
	}
	if s := borrow[float32](unsafe.Pointer(&buf[0]), 0); s != nil {
		t.Error("zero count should yield a nil slice")
	}
}

func TestBorrowAliases(t *testing.T) {
	buf := []float32{1, 2, 3, 4}

	s := borrow[float32](unsafe.Pointer(&buf[0]), uint32(len(buf)))
	if len(s) != len(buf) {
		t.Fatalf("expected length %d, got %d", len(buf), len(s))
	}
	for i, v := range buf {
		if s[i] != v {
			t.Errorf("element %d: expected %v, got %v", i, v, s[i])
		}
	}

	// The borrowed slice is a view, not a copy.
	buf[2] = 42
	if s[2] != 42 {
		t.Error("borrowed slice should alias the source memory")
	}
}

func TestBorrowReinterprets(t *testing.T) {
	buf := []float32{1, 2, 3, 4, 5, 6}

	s := borrow[Vector3](unsafe.Pointer(&buf[0]), 2)
	if len(s) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(s))
	}
	if s[0] != (Vector3{1, 2, 3}) || s[1] != (Vector3{4, 5, 6}) {
		t.Errorf("unexpected vectors: %v", s)
	}
}

func TestQuatKeyOrder(t *testing.T) {
	k := QuatKey{Time: 1, W: 0.5, X: 0.1, Y: 0.2, Z: 0.3}

	q := k.Quat()
	if q[0] != 0.1 || q[1] != 0.2 || q[2] != 0.3 || q[3] != 0.5 {
		t.Errorf("expected x,y,z,w order, got %v", q)
	}
}
