// Package assimp provides read-only, zero-copy Go views over a scene
// imported by the Open Asset Import Library (libassimp).
//
// The library owns every byte of the imported graph. ImportFile and
// ImportMemory hand back a *Scene, the single owner of that foreign
// memory; everything else (Node, Mesh, Material, ...) is a borrowed view
// that reads the graph in place without copying or releasing it. Views,
// and the slices and strings obtained from them, are valid only until
// Scene.Release is called.
package assimp

/*
#cgo LDFLAGS: -lassimp
#include <assimp/version.h>
#include <assimp/mesh.h>
*/
import "C"

import "fmt"

// Per-mesh channel limits of the import library.
const (
	MaxColorSets     = C.AI_MAX_NUMBER_OF_COLOR_SETS
	MaxTextureCoords = C.AI_MAX_NUMBER_OF_TEXTURECOORDS
)

// Version returns the version of the linked import library.
func Version() string {
	return fmt.Sprintf("%d.%d.%d",
		uint32(C.aiGetVersionMajor()),
		uint32(C.aiGetVersionMinor()),
		uint32(C.aiGetVersionPatch()))
}
