package assimp

/*
#include <stdlib.h>
#include <assimp/material.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// DefaultMaterialName is the name of materials the importer synthesizes
// for meshes without one.
const DefaultMaterialName = "DefaultMaterial"

// TextureOp defines how the Nth texture of a semantic is combined with
// the result of all previous layers.
type TextureOp uint32

const (
	TextureOpMultiply  TextureOp = 0x0 // T = T1 * T2
	TextureOpAdd       TextureOp = 0x1 // T = T1 + T2
	TextureOpSubtract  TextureOp = 0x2 // T = T1 - T2
	TextureOpDivide    TextureOp = 0x3 // T = T1 / T2
	TextureOpSmoothAdd TextureOp = 0x4 // T = (T1 + T2) - (T1 * T2)
	TextureOpSignedAdd TextureOp = 0x5 // T = T1 + (T2 - 0.5)

	// TextureOpUnknown is returned for codes outside the documented
	// domain.
	TextureOpUnknown TextureOp = 0xffffffff
)

func textureOpFromRaw(v uint32) TextureOp {
	if v <= uint32(TextureOpSignedAdd) {
		return TextureOp(v)
	}
	return TextureOpUnknown
}

// String returns a human-readable operator name.
func (o TextureOp) String() string {
	switch o {
	case TextureOpMultiply:
		return "Multiply"
	case TextureOpAdd:
		return "Add"
	case TextureOpSubtract:
		return "Subtract"
	case TextureOpDivide:
		return "Divide"
	case TextureOpSmoothAdd:
		return "SmoothAdd"
	case TextureOpSignedAdd:
		return "SignedAdd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(o))
	}
}

// TextureMapMode defines how UV coordinates outside [0...1] are
// handled on one axis.
type TextureMapMode uint32

const (
	// TextureMapWrap translates u|v to u%1|v%1.
	TextureMapWrap TextureMapMode = 0x0
	// TextureMapClamp clamps to the nearest valid value.
	TextureMapClamp TextureMapMode = 0x1
	// TextureMapMirror alternates between u%1 and 1-(u%1).
	TextureMapMirror TextureMapMode = 0x2
	// TextureMapDecal leaves pixels outside [0...1] untextured.
	TextureMapDecal TextureMapMode = 0x3

	// TextureMapUnknown is returned for codes outside the documented
	// domain.
	TextureMapUnknown TextureMapMode = 0xffffffff
)

func textureMapModeFromRaw(v uint32) TextureMapMode {
	if v <= uint32(TextureMapDecal) {
		return TextureMapMode(v)
	}
	return TextureMapUnknown
}

// String returns a human-readable wrap mode name.
func (m TextureMapMode) String() string {
	switch m {
	case TextureMapWrap:
		return "Wrap"
	case TextureMapClamp:
		return "Clamp"
	case TextureMapMirror:
		return "Mirror"
	case TextureMapDecal:
		return "Decal"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(m))
	}
}

// TextureMapping defines how mapping coordinates for a texture are
// generated.
type TextureMapping uint32

const (
	// TextureMappingUV takes coordinates from a UV channel; the slot's
	// UVChannel selects which one.
	TextureMappingUV       TextureMapping = 0x0
	TextureMappingSphere   TextureMapping = 0x1
	TextureMappingCylinder TextureMapping = 0x2
	TextureMappingBox      TextureMapping = 0x3
	TextureMappingPlane    TextureMapping = 0x4
	TextureMappingOther    TextureMapping = 0x5

	// TextureMappingUnknown is returned for codes outside the
	// documented domain.
	TextureMappingUnknown TextureMapping = 0xffffffff
)

func textureMappingFromRaw(v uint32) TextureMapping {
	if v <= uint32(TextureMappingOther) {
		return TextureMapping(v)
	}
	return TextureMappingUnknown
}

// String returns a human-readable mapping name.
func (m TextureMapping) String() string {
	switch m {
	case TextureMappingUV:
		return "UV"
	case TextureMappingSphere:
		return "Sphere"
	case TextureMappingCylinder:
		return "Cylinder"
	case TextureMappingBox:
		return "Box"
	case TextureMappingPlane:
		return "Plane"
	case TextureMappingOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(m))
	}
}

// TextureType is the semantic role a texture plays in shading. It is
// the lookup key of the per-material texture-slot store.
type TextureType uint32

const (
	// TextureTypeNone is the semantic of material properties not
	// related to textures.
	TextureTypeNone TextureType = 0x0

	TextureTypeDiffuse      TextureType = 0x1
	TextureTypeSpecular     TextureType = 0x2
	TextureTypeAmbient      TextureType = 0x3
	TextureTypeEmissive     TextureType = 0x4
	TextureTypeHeight       TextureType = 0x5
	TextureTypeNormals      TextureType = 0x6
	TextureTypeShininess    TextureType = 0x7
	TextureTypeOpacity      TextureType = 0x8
	TextureTypeDisplacement TextureType = 0x9
	TextureTypeLightmap     TextureType = 0xA
	TextureTypeReflection   TextureType = 0xB

	// TextureTypeUnknown covers references that match no definition
	// above; decoding an out-of-domain code lands here too.
	TextureTypeUnknown TextureType = 0xC
)

func textureTypeFromRaw(v uint32) TextureType {
	if v <= uint32(TextureTypeUnknown) {
		return TextureType(v)
	}
	return TextureTypeUnknown
}

// String returns a human-readable semantic name.
func (t TextureType) String() string {
	switch t {
	case TextureTypeNone:
		return "None"
	case TextureTypeDiffuse:
		return "Diffuse"
	case TextureTypeSpecular:
		return "Specular"
	case TextureTypeAmbient:
		return "Ambient"
	case TextureTypeEmissive:
		return "Emissive"
	case TextureTypeHeight:
		return "Height"
	case TextureTypeNormals:
		return "Normals"
	case TextureTypeShininess:
		return "Shininess"
	case TextureTypeOpacity:
		return "Opacity"
	case TextureTypeDisplacement:
		return "Displacement"
	case TextureTypeLightmap:
		return "Lightmap"
	case TextureTypeReflection:
		return "Reflection"
	case TextureTypeUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(t))
	}
}

// ShadingMode selects the shading model a material asks for. The value
// is a hint.
type ShadingMode uint32

const (
	// ShadingFlat shades per face, diffuse only.
	ShadingFlat ShadingMode = 0x1
	// ShadingGouraud is simple Gouraud shading, the default when a
	// material does not specify a model.
	ShadingGouraud      ShadingMode = 0x2
	ShadingPhong        ShadingMode = 0x3
	ShadingBlinn        ShadingMode = 0x4
	ShadingToon         ShadingMode = 0x5
	ShadingOrenNayar    ShadingMode = 0x6
	ShadingMinnaert     ShadingMode = 0x7
	ShadingCookTorrance ShadingMode = 0x8
	// ShadingNone applies a constant light influence of 1.0.
	ShadingNone    ShadingMode = 0x9
	ShadingFresnel ShadingMode = 0xA

	// ShadingUnknown is returned for codes outside the documented
	// domain.
	ShadingUnknown ShadingMode = 0xffffffff
)

func shadingModeFromRaw(v uint32) ShadingMode {
	if v >= uint32(ShadingFlat) && v <= uint32(ShadingFresnel) {
		return ShadingMode(v)
	}
	return ShadingUnknown
}

// String returns a human-readable shading model name.
func (s ShadingMode) String() string {
	switch s {
	case ShadingFlat:
		return "Flat"
	case ShadingGouraud:
		return "Gouraud"
	case ShadingPhong:
		return "Phong"
	case ShadingBlinn:
		return "Blinn"
	case ShadingToon:
		return "Toon"
	case ShadingOrenNayar:
		return "OrenNayar"
	case ShadingMinnaert:
		return "Minnaert"
	case ShadingCookTorrance:
		return "CookTorrance"
	case ShadingNone:
		return "NoShading"
	case ShadingFresnel:
		return "Fresnel"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(s))
	}
}

// BlendMode defines how a pixel's final color is computed from the
// previous framebuffer color and the new material color:
// SourceColor*SourceBlend + DestColor*DestBlend.
type BlendMode uint32

const (
	// BlendDefault is SourceColor*SourceAlpha + DestColor*(1-SourceAlpha).
	BlendDefault BlendMode = 0x0
	// BlendAdditive is SourceColor + DestColor.
	BlendAdditive BlendMode = 0x1

	// BlendUnknown is returned for codes outside the documented domain.
	BlendUnknown BlendMode = 0xffffffff
)

func blendModeFromRaw(v uint32) BlendMode {
	if v <= uint32(BlendAdditive) {
		return BlendMode(v)
	}
	return BlendUnknown
}

// String returns a human-readable blend mode name.
func (b BlendMode) String() string {
	switch b {
	case BlendDefault:
		return "Default"
	case BlendAdditive:
		return "Additive"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(b))
	}
}

// TextureFlags is the bit set of per-slot texture flags.
type TextureFlags uint32

const (
	// TextureFlagInvert inverts the color values componentwise (1-n).
	TextureFlagInvert TextureFlags = 0x1
	// TextureFlagUseAlpha asks the application to process the alpha
	// channel. Mutually exclusive with TextureFlagIgnoreAlpha.
	TextureFlagUseAlpha TextureFlags = 0x2
	// TextureFlagIgnoreAlpha asks the application to ignore the alpha
	// channel.
	TextureFlagIgnoreAlpha TextureFlags = 0x4
)

// Has reports whether every bit of flag is set.
func (f TextureFlags) Has(flag TextureFlags) bool { return f&flag == flag }

// MaterialProperties is the aggregate answer of the fixed well-known
// material keys. Keys absent from the underlying store are filled with
// their documented defaults rather than reported as errors.
type MaterialProperties struct {
	Name              string
	TwoSided          bool
	ShadingMode       ShadingMode // default Gouraud
	Wireframe         bool
	BlendMode         BlendMode
	Opacity           float32 // default 1.0
	BumpScaling       float32
	Shininess         float32
	ShininessStrength float32 // default 1.0
	Reflectivity      float32
	RefractionIndex   float32 // default 1.0
	ColorDiffuse      Color4
	ColorAmbient      Color4
	ColorSpecular     Color4
	ColorEmissive     Color4
	ColorTransparent  Color4
	ColorReflective   Color4
}

// TextureProperties is the decoded binding of one texture slot.
type TextureProperties struct {
	// TextureRef is the texture path, or "*N" for the Nth embedded
	// texture of the scene.
	TextureRef string
	Mapping    TextureMapping
	// UVChannel selects the UV channel when Mapping is
	// TextureMappingUV; -1 when the source did not specify one.
	UVChannel int
	Blend     float32
	Op        TextureOp
	// MapMode holds the wrap modes for the two UV axes.
	MapMode [2]TextureMapMode
	Flags   TextureFlags
}

// UVTransform describes how a UV channel is transformed. The rotation
// is in radians, counter-clockwise, around (0.5, 0.5).
type UVTransform struct {
	Translation Vector2 // default (0, 0)
	Scaling     Vector2 // default (1, 1)
	Rotation    float32 // default 0
}

// Material is a borrowed view of a generic, string-keyed property
// store. The raw store stays internal; reads go through the typed
// queries below.
type Material struct {
	c *C.struct_aiMaterial
}

// floatKey reads a float property, substituting def when the key is
// absent. The foreign call leaves the output untouched on failure.
func (m Material) floatKey(key string, def float32) float32 {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	out := C.ai_real(def)
	C.aiGetMaterialFloatArray(m.c, ck, 0, 0, &out, nil)
	return float32(out)
}

// intKey reads an integer property, substituting def when the key is
// absent.
func (m Material) intKey(key string, def int32) int32 {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	out := C.int(def)
	C.aiGetMaterialIntegerArray(m.c, ck, 0, 0, &out, nil)
	return int32(out)
}

// colorKey reads a color property, zero when the key is absent. The
// output buffer is stack-local, so the value is copied.
func (m Material) colorKey(key string) Color4 {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	var out C.struct_aiColor4D
	if C.aiGetMaterialColor(m.c, ck, 0, 0, &out) != C.aiReturn_SUCCESS {
		return Color4{}
	}
	return c4(out)
}

// stringKey reads a string property, empty when the key is absent. The
// output buffer is stack-local, so the bytes are copied.
func (m Material) stringKey(key string) string {
	ck := C.CString(key)
	defer C.free(unsafe.Pointer(ck))
	var out C.struct_aiString
	if C.aiGetMaterialString(m.c, ck, 0, 0, &out) != C.aiReturn_SUCCESS {
		return ""
	}
	return copyStr(&out)
}

// Properties reads the fixed set of well-known keys in one aggregate
// query. A key absent from the store is silently filled with its
// documented default.
func (m Material) Properties() MaterialProperties {
	return MaterialProperties{
		Name:              m.stringKey("?mat.name"),
		TwoSided:          m.intKey("$mat.twosided", 0) != 0,
		ShadingMode:       shadingModeFromRaw(uint32(m.intKey("$mat.shadingm", int32(ShadingGouraud)))),
		Wireframe:         m.intKey("$mat.wireframe", 0) != 0,
		BlendMode:         blendModeFromRaw(uint32(m.intKey("$mat.blend", int32(BlendDefault)))),
		Opacity:           m.floatKey("$mat.opacity", 1),
		BumpScaling:       m.floatKey("$mat.bumpscaling", 0),
		Shininess:         m.floatKey("$mat.shininess", 0),
		ShininessStrength: m.floatKey("$mat.shinpercent", 1),
		Reflectivity:      m.floatKey("$mat.reflectivity", 0),
		RefractionIndex:   m.floatKey("$mat.refracti", 1),
		ColorDiffuse:      m.colorKey("$clr.diffuse"),
		ColorAmbient:      m.colorKey("$clr.ambient"),
		ColorSpecular:     m.colorKey("$clr.specular"),
		ColorEmissive:     m.colorKey("$clr.emissive"),
		ColorTransparent:  m.colorKey("$clr.transparent"),
		ColorReflective:   m.colorKey("$clr.reflective"),
	}
}

// TextureCount returns the number of texture slots bound for the given
// semantic. Valid slot indices are 0 <= index < TextureCount(semantic).
func (m Material) TextureCount(semantic TextureType) int {
	return int(C.aiGetMaterialTextureCount(m.c, C.enum_aiTextureType(semantic)))
}

// TextureProperties decodes the binding of one texture slot. It
// returns ok=false when index is out of range for the semantic, or
// when the foreign query fails; out-of-range access is an absence, not
// an error.
func (m Material) TextureProperties(semantic TextureType, index int) (TextureProperties, bool) {
	if index < 0 || index >= m.TextureCount(semantic) {
		return TextureProperties{}, false
	}

	var (
		path    C.struct_aiString
		mapping C.enum_aiTextureMapping = C.aiTextureMapping_OTHER
		uvIndex C.uint                  = ^C.uint(0)
		blend   C.ai_real
		op      C.enum_aiTextureOp
		mapMode [2]C.enum_aiTextureMapMode
		flags   C.uint
	)
	ok := C.aiGetMaterialTexture(m.c, C.enum_aiTextureType(semantic), C.uint(index),
		&path, &mapping, &uvIndex, &blend, &op, &mapMode[0], &flags) == C.aiReturn_SUCCESS
	if !ok {
		return TextureProperties{}, false
	}

	uvChannel := -1
	if uvIndex != ^C.uint(0) {
		uvChannel = int(uvIndex)
	}
	return TextureProperties{
		TextureRef: copyStr(&path),
		Mapping:    textureMappingFromRaw(uint32(mapping)),
		UVChannel:  uvChannel,
		Blend:      float32(blend),
		Op:         textureOpFromRaw(uint32(op)),
		MapMode: [2]TextureMapMode{
			textureMapModeFromRaw(uint32(mapMode[0])),
			textureMapModeFromRaw(uint32(mapMode[1])),
		},
		Flags: TextureFlags(flags),
	}, true
}

// UVTransform reads the UV transform of one texture slot, ok=false
// when the slot has none.
func (m Material) UVTransform(semantic TextureType, index int) (UVTransform, bool) {
	ck := C.CString("$tex.uvtrafo")
	defer C.free(unsafe.Pointer(ck))
	var out C.struct_aiUVTransform
	if C.aiGetMaterialUVTransform(m.c, ck, C.uint(semantic), C.uint(index), &out) != C.aiReturn_SUCCESS {
		return UVTransform{}, false
	}
	return UVTransform{
		Translation: v2(out.mTranslation),
		Scaling:     v2(out.mScaling),
		Rotation:    float32(out.mRotation),
	}, true
}

var (
	_ [unsafe.Sizeof(Material{}) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Material{})]struct{}
)
