package assimp

/*
#include <assimp/mesh.h>
*/
import "C"

import "unsafe"

// PrimitiveType is the bit set of geometric primitive kinds present in
// a mesh.
type PrimitiveType uint32

const (
	// PrimitivePoint is a single vertex; its faces carry one index.
	PrimitivePoint PrimitiveType = 0x1

	// PrimitiveLine is a start/end pair; its faces carry two indices.
	PrimitiveLine PrimitiveType = 0x2

	// PrimitiveTriangle faces carry exactly three indices.
	PrimitiveTriangle PrimitiveType = 0x4

	// PrimitivePolygon faces carry more than three indices. The
	// triangulate post-process step splits these up.
	PrimitivePolygon PrimitiveType = 0x8
)

// Has reports whether every bit of p is set.
func (t PrimitiveType) Has(p PrimitiveType) bool { return t&p == p }

// Face is a single face of a mesh, borrowed in place from the foreign
// face array.
type Face C.struct_aiFace

// Indices returns the vertex indices defining this face. Three indices
// make a triangle, more a polygon.
func (f *Face) Indices() []uint32 {
	return borrow[uint32](unsafe.Pointer(f.mIndices), uint32(f.mNumIndices))
}

// VertexWeight is a single influence of a bone on a vertex.
type VertexWeight struct {
	// VertexID indexes the owning mesh's vertex arrays.
	VertexID uint32
	// Weight is the strength of the influence in (0...1). All weights
	// on one vertex sum to 1.
	Weight float32
}

// Bone is a borrowed view of a single bone of a mesh. The name links it
// to a node in the hierarchy and to animation channels.
type Bone struct {
	c *C.struct_aiBone
}

// Name returns the bone name. Bone names are unique within a scene.
func (b Bone) Name() string {
	return str(&b.c.mName)
}

// Weights returns the vertices affected by this bone.
func (b Bone) Weights() []VertexWeight {
	return borrow[VertexWeight](unsafe.Pointer(b.c.mWeights), uint32(b.c.mNumWeights))
}

// OffsetMatrix returns the matrix transforming from mesh space to bone
// space in bind pose.
func (b Bone) OffsetMatrix() Matrix4 {
	return matrix(b.c.mOffsetMatrix)
}

// Mesh is a borrowed view of a geometry batch with a single material.
// Vertex attributes are parallel per-vertex channels: positions are
// always present in a complete scene, every other channel is optional
// and, when present, exactly as long as Vertices.
type Mesh struct {
	c *C.struct_aiMesh
}

// Name returns the mesh name, empty if unnamed.
func (m Mesh) Name() string {
	return str(&m.c.mName)
}

// PrimitiveTypes reports which primitive kinds the faces of this mesh
// use.
func (m Mesh) PrimitiveTypes() PrimitiveType {
	return PrimitiveType(m.c.mPrimitiveTypes)
}

// Vertices returns the vertex positions. Only a scene imported with
// the incomplete flag may lack them.
func (m Mesh) Vertices() []Vector3 {
	return borrow[Vector3](unsafe.Pointer(m.c.mVertices), uint32(m.c.mNumVertices))
}

// Normals returns the per-vertex normals, nil when the mesh has none.
// Normals of vertices referenced only by point or line primitives are
// undefined (qNaN).
func (m Mesh) Normals() []Vector3 {
	return borrow[Vector3](unsafe.Pointer(m.c.mNormals), uint32(m.c.mNumVertices))
}

// Tangents returns the per-vertex tangents, nil when the mesh has
// none. A mesh with tangents also has bitangents.
func (m Mesh) Tangents() []Vector3 {
	return borrow[Vector3](unsafe.Pointer(m.c.mTangents), uint32(m.c.mNumVertices))
}

// Bitangents returns the per-vertex bitangents, nil when the mesh has
// none.
func (m Mesh) Bitangents() []Vector3 {
	return borrow[Vector3](unsafe.Pointer(m.c.mBitangents), uint32(m.c.mNumVertices))
}

// Colors returns the given vertex color channel, nil when the channel
// is unused or out of range. Channels 0 through MaxColorSets-1 exist.
func (m Mesh) Colors(channel int) []Color4 {
	if channel < 0 || channel >= MaxColorSets {
		return nil
	}
	return borrow[Color4](unsafe.Pointer(m.c.mColors[channel]), uint32(m.c.mNumVertices))
}

// TextureCoords returns the given UV(W) channel, nil when the channel
// is unused or out of range. Channels 0 through MaxTextureCoords-1
// exist; unused components of a coordinate are zero.
func (m Mesh) TextureCoords(channel int) []Vector3 {
	if channel < 0 || channel >= MaxTextureCoords {
		return nil
	}
	return borrow[Vector3](unsafe.Pointer(m.c.mTextureCoords[channel]), uint32(m.c.mNumVertices))
}

// NumUVComponents returns how many components (1, 2 or 3) the given UV
// channel uses, 0 for an unused channel.
func (m Mesh) NumUVComponents(channel int) int {
	if channel < 0 || channel >= MaxTextureCoords {
		return 0
	}
	return int(m.c.mNumUVComponents[channel])
}

// Faces returns the face list. Each face refers to vertices by index.
func (m Mesh) Faces() []Face {
	return borrow[Face](unsafe.Pointer(m.c.mFaces), uint32(m.c.mNumFaces))
}

// Bones returns the bones of this mesh, nil for an unskinned mesh.
func (m Mesh) Bones() []Bone {
	return borrow[Bone](unsafe.Pointer(m.c.mBones), uint32(m.c.mNumBones))
}

// MaterialIndex returns the index of this mesh's material in
// Scene.Materials. A mesh uses exactly one material.
func (m Mesh) MaterialIndex() uint32 {
	return uint32(m.c.mMaterialIndex)
}

var (
	_ [unsafe.Sizeof(VertexWeight{}) - unsafe.Sizeof(C.struct_aiVertexWeight{})]struct{}
	_ [unsafe.Sizeof(C.struct_aiVertexWeight{}) - unsafe.Sizeof(VertexWeight{})]struct{}

	_ [unsafe.Sizeof(Bone{}) - unsafe.Sizeof(uintptr(0))]struct{}
	_ [unsafe.Sizeof(Mesh{}) - unsafe.Sizeof(uintptr(0))]struct{}
)
