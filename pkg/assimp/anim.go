package assimp

/*
#include <assimp/types.h>
#include <assimp/anim.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/flywave/go3d/quaternion"
)

// VectorKey is a time-value pair specifying a 3D vector for the given
// time, borrowed in place from the channel's key array.
type VectorKey struct {
	// Time of this key, in ticks.
	Time float64
	// Value of this key.
	Value Vector3
}

// QuatKey is a time-value pair specifying a rotation for the given
// time. The quaternion components are laid out in the engine's w, x,
// y, z order.
type QuatKey struct {
	// Time of this key, in ticks.
	Time       float64
	W, X, Y, Z float32
}

// Quat returns the rotation as a go3d quaternion (x, y, z, w order).
func (k QuatKey) Quat() quaternion.T {
	return quaternion.T{k.X, k.Y, k.Z, k.W}
}

// AnimBehavior defines how an animation channel extrapolates outside
// its key range.
type AnimBehavior uint32

const (
	// AnimBehaviorDefault takes the value from the node's default
	// transformation.
	AnimBehaviorDefault AnimBehavior = 0x0
	// AnimBehaviorConstant uses the nearest key without interpolation.
	AnimBehaviorConstant AnimBehavior = 0x1
	// AnimBehaviorLinear extrapolates linearly from the nearest two
	// keys.
	AnimBehaviorLinear AnimBehavior = 0x2
	// AnimBehaviorRepeat repeats the animation: for keys spanning n to
	// m and time t, the value at (t-n) % |m-n| is used.
	AnimBehaviorRepeat AnimBehavior = 0x3

	// AnimBehaviorUnknown is returned for codes outside the documented
	// domain.
	AnimBehaviorUnknown AnimBehavior = 0xffffffff
)

func animBehaviorFromRaw(v uint32) AnimBehavior {
	if v <= uint32(AnimBehaviorRepeat) {
		return AnimBehavior(v)
	}
	return AnimBehaviorUnknown
}

// String returns a human-readable behavior name.
func (b AnimBehavior) String() string {
	switch b {
	case AnimBehaviorDefault:
		return "Default"
	case AnimBehaviorConstant:
		return "Constant"
	case AnimBehaviorLinear:
		return "Linear"
	case AnimBehaviorRepeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Unknown(%d)", uint32(b))
	}
}

// NodeAnim is a borrowed view of the animation of a single node. Keys
// are absolute, chronologically ordered, and applied as scaling, then
// rotation, then translation.
type NodeAnim struct {
	c *C.struct_aiNodeAnim
}

// NodeName returns the name of the affected node. The node exists and
// its name is unique; the link is a lookup, not an ownership edge.
func (a NodeAnim) NodeName() string {
	return str(&a.c.mNodeName)
}

// PositionKeys returns the time-sorted position key series. A channel
// with position keys also has at least one rotation and one scaling
// key.
func (a NodeAnim) PositionKeys() []VectorKey {
	return borrow[VectorKey](unsafe.Pointer(a.c.mPositionKeys), uint32(a.c.mNumPositionKeys))
}

// RotationKeys returns the time-sorted rotation key series.
func (a NodeAnim) RotationKeys() []QuatKey {
	return borrow[QuatKey](unsafe.Pointer(a.c.mRotationKeys), uint32(a.c.mNumRotationKeys))
}

// ScalingKeys returns the time-sorted scaling key series.
func (a NodeAnim) ScalingKeys() []VectorKey {
	return borrow[VectorKey](unsafe.Pointer(a.c.mScalingKeys), uint32(a.c.mNumScalingKeys))
}

// PreState defines how the channel behaves before the first key.
func (a NodeAnim) PreState() AnimBehavior {
	return animBehaviorFromRaw(uint32(a.c.mPreState))
}

// PostState defines how the channel behaves after the last key.
func (a NodeAnim) PostState() AnimBehavior {
	return animBehaviorFromRaw(uint32(a.c.mPostState))
}

// Animation is a borrowed view of one animation: keyframe series for a
// number of nodes.
type Animation struct {
	c *C.struct_aiAnimation
}

// Name returns the animation name, often empty for formats that
// support only a single animation.
func (a Animation) Name() string {
	return str(&a.c.mName)
}

// Duration returns the duration in ticks.
func (a Animation) Duration() float64 {
	return float64(a.c.mDuration)
}

// TicksPerSecond returns the tick rate, 0 if the file did not specify
// one.
func (a Animation) TicksPerSecond() float64 {
	return float64(a.c.mTicksPerSecond)
}

// Channels returns the per-node animation channels.
func (a Animation) Channels() []NodeAnim {
	return borrow[NodeAnim](unsafe.Pointer(a.c.mChannels), uint32(a.c.mNumChannels))
}

var (
	_ [unsafe.Sizeof(VectorKey{}) - unsafe.Sizeof(C.struct_aiVectorKey{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiVectorKey{}) - unsafe.Sizeof(VectorKey{})]struct{}

	_ [unsafe.Sizeof(QuatKey{}) - unsafe.Sizeof(C.struct_aiQuatKey{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiQuatKey{}) - unsafe.Sizeof(QuatKey{})]struct{}

	_ [unsafe.Sizeof(Animation{}) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(NodeAnim{}) - unsafe.Sizeof(uintptr(0))]struct{}
)
