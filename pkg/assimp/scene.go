package assimp

/*
#include <assimp/scene.h>
#include <assimp/cimport.h>
*/
import "C"

import (
	"sync"
	"unsafe"
)

// SceneFlags is the bit set reported by Scene.Flags.
type SceneFlags uint32

const (
	// SceneIncomplete marks a scene that bypassed some internal
	// validations, e.g. an animation skeleton or material library
	// imported without geometry. Most applications reject these.
	SceneIncomplete SceneFlags = 0x1

	// SceneValidated is set by the validation post-process step when
	// validation succeeded.
	SceneValidated SceneFlags = 0x2

	// SceneValidationWarning is set by the validation post-process step
	// when validation succeeded but found issues, e.g. a referenced
	// texture that does not exist.
	SceneValidationWarning SceneFlags = 0x4

	// SceneNonVerboseFormat is set by the join-identical-vertices step:
	// vertices may be referenced by more than one face.
	SceneNonVerboseFormat SceneFlags = 0x8

	// SceneTerrain denotes pure height-map terrain data.
	SceneTerrain SceneFlags = 0x10
)

// Has reports whether every bit of flag is set.
func (f SceneFlags) Has(flag SceneFlags) bool { return f&flag == flag }

// Scene is the root of an imported asset and the sole owner of all
// foreign memory reachable from it. Views handed out by its accessors
// borrow from the scene and must not be used after Release.
//
// A scene that is never mutated is safe for concurrent reads.
type Scene struct {
	c       *C.struct_aiScene
	release sync.Once
}

func newScene(p *C.struct_aiScene) *Scene {
	if p == nil {
		panic("assimp: nil scene pointer")
	}
	return &Scene{c: p}
}

// Release frees the imported graph and everything reachable from it.
// Calling Release more than once is a no-op; there is exactly one owner
// and exactly one release. All views derived from the scene are invalid
// afterwards.
func (s *Scene) Release() {
	s.release.Do(func() {
		C.aiReleaseImport(s.c)
		s.c = nil
	})
}

// Flags returns the scene-level flag bits. Zero means no flags are set.
func (s *Scene) Flags() SceneFlags {
	return SceneFlags(s.c.mFlags)
}

// RootNode returns the root of the node hierarchy. A successfully
// imported scene always has one.
func (s *Scene) RootNode() Node {
	return newNode(s.c.mRootNode)
}

// Meshes returns the flat mesh collection. Node mesh indices point into
// this slice.
func (s *Scene) Meshes() []Mesh {
	return borrow[Mesh](unsafe.Pointer(s.c.mMeshes), uint32(s.c.mNumMeshes))
}

// Materials returns the material collection. Mesh material indices
// point into this slice.
func (s *Scene) Materials() []Material {
	return borrow[Material](unsafe.Pointer(s.c.mMaterials), uint32(s.c.mNumMaterials))
}

// Animations returns all animations imported from the file.
func (s *Scene) Animations() []Animation {
	return borrow[Animation](unsafe.Pointer(s.c.mAnimations), uint32(s.c.mNumAnimations))
}

// Textures returns the embedded textures. Materials reference them with
// paths of the form "*0", "*1", ...
func (s *Scene) Textures() []Texture {
	return borrow[Texture](unsafe.Pointer(s.c.mTextures), uint32(s.c.mNumTextures))
}

// Lights returns all light sources imported from the file.
func (s *Scene) Lights() []Light {
	return borrow[Light](unsafe.Pointer(s.c.mLights), uint32(s.c.mNumLights))
}

// Cameras returns all cameras imported from the file. The first entry,
// if any, is the default view into the scene.
func (s *Scene) Cameras() []Camera {
	return borrow[Camera](unsafe.Pointer(s.c.mCameras), uint32(s.c.mNumCameras))
}

// Metadata returns the scene-level metadata block, if the importer
// produced one.
func (s *Scene) Metadata() (Metadata, bool) {
	if s.c.mMetaData == nil {
		return Metadata{}, false
	}
	return newMetadata(s.c.mMetaData), true
}
