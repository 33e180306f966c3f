package assimp

// PostProcess is the bit set of post-processing steps applied by an
// import call. Steps not listed here do not exist; combining unknown
// bits is rejected by the importer.
type PostProcess uint32

const (
	// CalcTangentSpace computes tangents and bitangents for meshes
	// with normals and texture coordinates.
	CalcTangentSpace PostProcess = 0x1

	// JoinIdenticalVertices folds identical vertices into one,
	// producing index-buffer friendly meshes.
	JoinIdenticalVertices PostProcess = 0x2

	// MakeLeftHanded converts the scene to a left-handed coordinate
	// system.
	MakeLeftHanded PostProcess = 0x4

	// Triangulate splits polygons with more than three corners into
	// triangles.
	Triangulate PostProcess = 0x8

	// RemoveComponent removes the configured data streams (see the
	// importer properties).
	RemoveComponent PostProcess = 0x10

	// GenNormals generates per-face normals for meshes without them.
	GenNormals PostProcess = 0x20

	// GenSmoothNormals generates smoothed per-vertex normals for
	// meshes without them.
	GenSmoothNormals PostProcess = 0x40

	// SplitLargeMeshes splits meshes over the configured vertex or
	// face limits.
	SplitLargeMeshes PostProcess = 0x80

	// PreTransformVertices collapses the node graph and pre-transforms
	// all vertices.
	PreTransformVertices PostProcess = 0x100

	// LimitBoneWeights caps the number of bone influences per vertex.
	LimitBoneWeights PostProcess = 0x200

	// ValidateDataStructure validates the imported graph and sets the
	// scene validation flags.
	ValidateDataStructure PostProcess = 0x400

	// ImproveCacheLocality reorders triangles for a better vertex
	// cache hit rate.
	ImproveCacheLocality PostProcess = 0x800

	// RemoveRedundantMaterials drops unreferenced and duplicate
	// materials.
	RemoveRedundantMaterials PostProcess = 0x1000

	// FixInfacingNormals flips normals that point into the model.
	FixInfacingNormals PostProcess = 0x2000

	// PopulateArmatureData links bones to their armature and node.
	PopulateArmatureData PostProcess = 0x4000

	// SortByPType splits meshes with mixed primitive kinds into clean
	// submeshes.
	SortByPType PostProcess = 0x8000

	// FindDegenerates searches for degenerated faces and converts them
	// to lines or points.
	FindDegenerates PostProcess = 0x10000

	// FindInvalidData removes invalid data such as zeroed normals.
	FindInvalidData PostProcess = 0x20000

	// GenUVCoords converts non-UV mappings (spherical, cylindrical,
	// ...) to proper UV channels.
	GenUVCoords PostProcess = 0x40000

	// TransformUVCoords bakes per-slot UV transforms into the texture
	// coordinates.
	TransformUVCoords PostProcess = 0x80000

	// FindInstances collapses duplicated meshes into instances.
	FindInstances PostProcess = 0x100000

	// OptimizeMeshes reduces the number of meshes by merging.
	OptimizeMeshes PostProcess = 0x200000

	// OptimizeGraph collapses nodes without payload.
	OptimizeGraph PostProcess = 0x400000

	// FlipUVs flips texture coordinates along the y axis.
	FlipUVs PostProcess = 0x800000

	// FlipWindingOrder reverses the face winding order to clockwise.
	FlipWindingOrder PostProcess = 0x1000000

	// SplitByBoneCount splits meshes over the configured bone limit.
	SplitByBoneCount PostProcess = 0x2000000

	// Debone removes bones with little or no influence.
	Debone PostProcess = 0x4000000

	// GlobalScale applies the configured global scale factor.
	GlobalScale PostProcess = 0x8000000

	// EmbedTextures reads referenced texture files and embeds them.
	EmbedTextures PostProcess = 0x10000000

	// ForceGenNormals generates normals even for meshes that have
	// them.
	ForceGenNormals PostProcess = 0x20000000

	// DropNormals removes normals before any other step runs.
	DropNormals PostProcess = 0x40000000

	// GenBoundingBoxes computes axis-aligned bounding boxes per mesh.
	GenBoundingBoxes PostProcess = 0x80000000
)

// Convenience combinations, matching the import library's presets.
const (
	// ConvertToLeftHanded converts to the DirectX convention:
	// left-handed coordinates, UV origin top-left, clockwise faces.
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	// PresetRealtimeFast is the fastest preset producing data a
	// real-time renderer can consume.
	PresetRealtimeFast = CalcTangentSpace |
		GenNormals |
		JoinIdenticalVertices |
		Triangulate |
		GenUVCoords |
		SortByPType

	// PresetRealtimeQuality is the default choice for real-time use.
	PresetRealtimeQuality = CalcTangentSpace |
		GenSmoothNormals |
		JoinIdenticalVertices |
		ImproveCacheLocality |
		LimitBoneWeights |
		RemoveRedundantMaterials |
		SplitLargeMeshes |
		Triangulate |
		GenUVCoords |
		SortByPType |
		FindDegenerates |
		FindInvalidData

	// PresetRealtimeMaxQuality trades time for output quality.
	PresetRealtimeMaxQuality = PresetRealtimeQuality |
		FindInstances |
		ValidateDataStructure |
		OptimizeMeshes
)

// Has reports whether every bit of step is set.
func (p PostProcess) Has(step PostProcess) bool { return p&step == step }
