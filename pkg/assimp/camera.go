package assimp

/*
#include <assimp/camera.h>
*/
import "C"

import "unsafe"

// Camera is a borrowed view of a camera. Like lights, cameras are
// positioned by the node of the same name; the fields below are
// relative to that node's transform.
type Camera struct {
	c *C.struct_aiCamera
}

// Name returns the camera name, matching a node in the hierarchy.
func (c Camera) Name() string {
	return str(&c.c.mName)
}

// Position returns the camera position relative to its node.
func (c Camera) Position() Vector3 {
	return v3(c.c.mPosition)
}

// Up returns the up vector, orthogonal to the look-at direction.
func (c Camera) Up() Vector3 {
	return v3(c.c.mUp)
}

// LookAt returns the viewing direction.
func (c Camera) LookAt() Vector3 {
	return v3(c.c.mLookAt)
}

// HorizontalFOV returns half the horizontal field of view in radians.
func (c Camera) HorizontalFOV() float32 {
	return float32(c.c.mHorizontalFOV)
}

// ClipPlaneNear returns the distance of the near clipping plane.
func (c Camera) ClipPlaneNear() float32 {
	return float32(c.c.mClipPlaneNear)
}

// ClipPlaneFar returns the distance of the far clipping plane.
func (c Camera) ClipPlaneFar() float32 {
	return float32(c.c.mClipPlaneFar)
}

// Aspect returns the screen aspect ratio, 0 if unknown.
func (c Camera) Aspect() float32 {
	return float32(c.c.mAspect)
}

var (
	_ [unsafe.Sizeof(Camera{}) - unsafe.Sizeof(uintptr(0))]struct{}
)
