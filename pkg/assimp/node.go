package assimp

/*
#include <assimp/scene.h>
*/
import "C"

import "unsafe"

// Node is a borrowed view of one node in the imported hierarchy. Each
// node carries a transform relative to its parent and refers to meshes
// by index into Scene.Meshes. Nodes compare equal when they view the
// same underlying record.
type Node struct {
	c *C.struct_aiNode
}

func newNode(p *C.struct_aiNode) Node {
	if p == nil {
		panic("assimp: nil node pointer")
	}
	return Node{c: p}
}

// Name returns the node name, empty if the node is unnamed. Nodes
// referenced by bones, lights or cameras are always named; names that
// look like "<DummyRootNode>" were synthesized by the importer.
func (n Node) Name() string {
	return str(&n.c.mName)
}

// Transform returns the transformation relative to the node's parent.
func (n Node) Transform() Matrix4 {
	return matrix(n.c.mTransformation)
}

// Parent returns the parent node. The root node has none.
func (n Node) Parent() (Node, bool) {
	if n.c.mParent == nil {
		return Node{}, false
	}
	return newNode(n.c.mParent), true
}

// Children returns the child nodes, nil for a leaf.
func (n Node) Children() []Node {
	return borrow[Node](unsafe.Pointer(n.c.mChildren), uint32(n.c.mNumChildren))
}

// Meshes returns the node's mesh references as indices into
// Scene.Meshes.
func (n Node) Meshes() []uint32 {
	return borrow[uint32](unsafe.Pointer(n.c.mMeshes), uint32(n.c.mNumMeshes))
}

// Metadata returns the node's metadata block, if any. Whether one
// exists depends on the source file format.
func (n Node) Metadata() (Metadata, bool) {
	if n.c.mMetaData == nil {
		return Metadata{}, false
	}
	return newMetadata(n.c.mMetaData), true
}

var (
	_ [unsafe.Sizeof(Node{}) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(uintptr(0)) - unsafe.Sizeof(Node{})]struct{}
)
