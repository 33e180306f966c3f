package assimp

/*
#include <assimp/light.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// LightSourceType distinguishes the kinds of light sources the engine
// describes with a single record.
type LightSourceType uint32

const (
	LightSourceUndefined LightSourceType = 0x0
	// LightSourceDirectional has a direction but is infinitely far
	// away; a good approximation for sun light.
	LightSourceDirectional LightSourceType = 0x1
	// LightSourcePoint has a position but no direction, like a bulb.
	LightSourcePoint LightSourceType = 0x2
	// LightSourceSpot emits light in a cone from a position along a
	// direction.
	LightSourceSpot LightSourceType = 0x3
	// LightSourceAmbient is the generic light level of the world; only
	// its color is meaningful.
	LightSourceAmbient LightSourceType = 0x4
	// LightSourceArea is a rectangle uniformly emitting from one side;
	// the position is the rectangle's center, the direction its
	// normal.
	LightSourceArea LightSourceType = 0x5

	// LightSourceUnknown is returned for codes outside the documented
	// domain.
	LightSourceUnknown LightSourceType = 0xffffffff
)

func lightSourceTypeFromRaw(v uint32) LightSourceType {
	if v <= uint32(LightSourceArea) {
		return LightSourceType(v)
	}
	return LightSourceUnknown
}

// String returns a human-readable light source type name.
func (t LightSourceType) String() string {
	switch t {
	case LightSourceUndefined:
		return "Undefined"
	case LightSourceDirectional:
		return "Directional"
	case LightSourcePoint:
		return "Point"
	case LightSourceSpot:
		return "Spot"
	case LightSourceAmbient:
		return "Ambient"
	case LightSourceArea:
		return "Area"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(t))
	}
}

// Light is a borrowed view of a light source. Position and direction
// are relative to the node of the same name, which may be animated.
type Light struct {
	c *C.struct_aiLight
}

// Name returns the light name. A node with the same name exists in the
// hierarchy and positions the light.
func (l Light) Name() string {
	return str(&l.c.mName)
}

// SourceType returns the kind of light source.
func (l Light) SourceType() LightSourceType {
	return lightSourceTypeFromRaw(uint32(l.c.mType))
}

// Position returns the light position, undefined for directional
// lights.
func (l Light) Position() Vector3 {
	return v3(l.c.mPosition)
}

// Direction returns the light direction, undefined for point lights.
// The vector need not be normalized.
func (l Light) Direction() Vector3 {
	return v3(l.c.mDirection)
}

// Up returns the light's up direction, undefined for point lights.
func (l Light) Up() Vector3 {
	return v3(l.c.mUp)
}

// AttenuationConstant is att0 in Atten = 1/(att0 + att1*d + att2*d*d).
func (l Light) AttenuationConstant() float32 {
	return float32(l.c.mAttenuationConstant)
}

// AttenuationLinear is att1 in the attenuation equation.
func (l Light) AttenuationLinear() float32 {
	return float32(l.c.mAttenuationLinear)
}

// AttenuationQuadratic is att2 in the attenuation equation.
func (l Light) AttenuationQuadratic() float32 {
	return float32(l.c.mAttenuationQuadratic)
}

// ColorDiffuse is multiplied with the material's diffuse color.
func (l Light) ColorDiffuse() Color3 {
	return c3(l.c.mColorDiffuse)
}

// ColorSpecular is multiplied with the material's specular color.
func (l Light) ColorSpecular() Color3 {
	return c3(l.c.mColorSpecular)
}

// ColorAmbient is multiplied with the material's ambient color. A
// leftover of the fixed-function pipeline; most renderers ignore it.
func (l Light) ColorAmbient() Color3 {
	return c3(l.c.mColorAmbient)
}

// AngleInnerCone returns the inner angle of a spot light's cone in
// radians, 2*Pi for point lights.
func (l Light) AngleInnerCone() float32 {
	return float32(l.c.mAngleInnerCone)
}

// AngleOuterCone returns the outer angle of a spot light's cone in
// radians, at least the inner angle.
func (l Light) AngleOuterCone() float32 {
	return float32(l.c.mAngleOuterCone)
}

// Size returns the extent of an area light.
func (l Light) Size() Vector2 {
	return v2(l.c.mSize)
}

var (
	_ [unsafe.Sizeof(Light{}) - unsafe.Sizeof(uintptr(0))]struct{}
)
