package assimp

/*
#include <assimp/types.h>
*/
import "C"

import (
	"unsafe"

	"github.com/flywave/go3d/mat4"
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"
	"github.com/flywave/go3d/vec4"
)

// Geometric primitives are go3d types so callers can feed them straight
// into math code. Their memory layout matches the corresponding import
// library records, which lets the bridge alias vertex and color arrays
// without copying.

// Vector2 is an x, y pair.
type Vector2 = vec2.T

// Vector3 is an x, y, z triple.
type Vector3 = vec3.T

// Color3 is an r, g, b triple.
type Color3 = vec3.T

// Color4 is an r, g, b, a quadruple.
type Color4 = vec4.T

// Matrix4 is a 4x4 transform in go3d's column order.
type Matrix4 = mat4.T

// borrow reinterprets a foreign (pointer, count) pair as a slice of E
// without copying. A nil pointer and a zero count are equivalent; both
// yield a nil slice. Layout compatibility between E and the foreign
// element type is a trusted precondition, pinned down by the guards at
// the bottom of this file.
func borrow[E any](p unsafe.Pointer, n uint32) []E {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*E)(p), int(n))
}

// str borrows the bytes of a length-prefixed engine string. The result
// aliases foreign memory and is invalidated by Scene.Release. Empty if
// the record carries no name.
func str(s *C.struct_aiString) string {
	if s.length == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(&s.data[0])), int(s.length))
}

// copyStr converts an engine string that lives on the caller's stack,
// so the bytes must be copied rather than borrowed.
func copyStr(s *C.struct_aiString) string {
	return C.GoStringN(&s.data[0], C.int(s.length))
}

// setStr fills an engine string in place, truncating to its fixed
// capacity (one byte is reserved for the terminator).
func setStr(s *C.struct_aiString, v string) {
	n := len(v)
	if max := len(s.data) - 1; n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		s.data[i] = C.char(v[i])
	}
	s.data[n] = 0
	s.length = C.ai_uint32(n)
}

func v2(v C.struct_aiVector2D) Vector2 {
	return Vector2{float32(v.x), float32(v.y)}
}

func v3(v C.struct_aiVector3D) Vector3 {
	return Vector3{float32(v.x), float32(v.y), float32(v.z)}
}

func c3(v C.struct_aiColor3D) Color3 {
	return Color3{float32(v.r), float32(v.g), float32(v.b)}
}

func c4(v C.struct_aiColor4D) Color4 {
	return Color4{float32(v.r), float32(v.g), float32(v.b), float32(v.a)}
}

// matrix converts the engine's row-major 4x4 matrix into go3d's column
// order, so translation lands in m[3] as go3d expects. Copied by value;
// matrices are not bridged.
func matrix(m C.struct_aiMatrix4x4) Matrix4 {
	return Matrix4{
		{float32(m.a1), float32(m.b1), float32(m.c1), float32(m.d1)},
		{float32(m.a2), float32(m.b2), float32(m.c2), float32(m.d2)},
		{float32(m.a3), float32(m.b3), float32(m.c3), float32(m.d3)},
		{float32(m.a4), float32(m.b4), float32(m.c4), float32(m.d4)},
	}
}

// Layout guards. Each pair of declarations compiles only when the Go
// type and the foreign type it is bridged to have identical sizes.
var (
	_ [unsafe.Sizeof(Vector3{}) - unsafe.Sizeof(C.struct_aiVector3D{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiVector3D{}) - unsafe.Sizeof(Vector3{})]struct{}

	_ [unsafe.Sizeof(Color4{}) - unsafe.Sizeof(C.struct_aiColor4D{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiColor4D{}) - unsafe.Sizeof(Color4{})]struct{}
)
