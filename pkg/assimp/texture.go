package assimp

/*
#include <assimp/texture.h>
*/
import "C"

import "unsafe"

// Texel is one decoded pixel of an uncompressed embedded texture, in
// the engine's b, g, r, a byte order.
type Texel struct {
	B, G, R, A uint8
}

// Texture is a borrowed view of an embedded texture. It is either a
// decoded texel grid (height non-zero) or a compressed byte blob
// tagged with a short format hint (height zero). Materials reference
// embedded textures with paths like "*0", "*1", ...
type Texture struct {
	c *C.struct_aiTexture
}

// FormatHint returns the lower-case file extension of a compressed
// texture's format without the dot (e.g. "png", "jpg"), ok=false for
// an uncompressed texture. An empty hint means the loader had no
// information about the format.
func (t Texture) FormatHint() (string, bool) {
	if t.c.mHeight != 0 {
		return "", false
	}
	return C.GoString(&t.c.achFormatHint[0]), true
}

// Filename returns the texture's original filename, empty when the
// source format does not record one.
func (t Texture) Filename() string {
	return str(&t.c.mFilename)
}

// Texels returns the decoded width x height texel grid, ok=false for a
// compressed texture.
func (t Texture) Texels() (width, height int, texels []Texel, ok bool) {
	if t.c.mHeight == 0 {
		return 0, 0, nil, false
	}
	width, height = int(t.c.mWidth), int(t.c.mHeight)
	texels = borrow[Texel](unsafe.Pointer(t.c.pcData), uint32(t.c.mWidth*t.c.mHeight))
	return width, height, texels, true
}

// Bytes returns the texture payload as raw bytes: the compressed blob
// (mWidth bytes) for a compressed texture, the texel data otherwise.
func (t Texture) Bytes() []byte {
	n := uint32(t.c.mWidth)
	if t.c.mHeight != 0 {
		n = uint32(t.c.mWidth) * uint32(t.c.mHeight) * 4
	}
	return borrow[byte](unsafe.Pointer(t.c.pcData), n)
}

var (
	_ [unsafe.Sizeof(Texel{}) - unsafe.Sizeof(C.struct_aiTexel{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiTexel{}) - unsafe.Sizeof(Texel{})]struct{}

	_ [unsafe.Sizeof(Texture{}) - unsafe.Sizeof(uintptr(0))]struct{}
)
