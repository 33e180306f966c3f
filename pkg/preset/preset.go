// Package preset loads named import configurations from YAML files: a
// list of post-process step names plus importer properties. Presets
// let tooling keep import pipelines in data instead of code.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/go-assimp/pkg/assimp"
)

// Preset describes one import configuration.
type Preset struct {
	Name       string     `yaml:"name"`
	Steps      []string   `yaml:"steps"`
	Properties Properties `yaml:"properties"`
}

// Properties holds importer properties keyed by the import library's
// configuration names (e.g. "PP_GSN_MAX_SMOOTHING_ANGLE").
type Properties struct {
	Ints    map[string]int     `yaml:"ints"`
	Floats  map[string]float32 `yaml:"floats"`
	Strings map[string]string  `yaml:"strings"`
}

// stepNames is the closed table of recognized step names. The preset
// names mirror the library's realtime presets.
var stepNames = map[string]assimp.PostProcess{
	"calc-tangent-space":         assimp.CalcTangentSpace,
	"join-identical-vertices":    assimp.JoinIdenticalVertices,
	"make-left-handed":           assimp.MakeLeftHanded,
	"triangulate":                assimp.Triangulate,
	"remove-component":           assimp.RemoveComponent,
	"gen-normals":                assimp.GenNormals,
	"gen-smooth-normals":         assimp.GenSmoothNormals,
	"split-large-meshes":         assimp.SplitLargeMeshes,
	"pre-transform-vertices":     assimp.PreTransformVertices,
	"limit-bone-weights":         assimp.LimitBoneWeights,
	"validate-data-structure":    assimp.ValidateDataStructure,
	"improve-cache-locality":     assimp.ImproveCacheLocality,
	"remove-redundant-materials": assimp.RemoveRedundantMaterials,
	"fix-infacing-normals":       assimp.FixInfacingNormals,
	"populate-armature-data":     assimp.PopulateArmatureData,
	"sort-by-ptype":              assimp.SortByPType,
	"find-degenerates":           assimp.FindDegenerates,
	"find-invalid-data":          assimp.FindInvalidData,
	"gen-uv-coords":              assimp.GenUVCoords,
	"transform-uv-coords":        assimp.TransformUVCoords,
	"find-instances":             assimp.FindInstances,
	"optimize-meshes":            assimp.OptimizeMeshes,
	"optimize-graph":             assimp.OptimizeGraph,
	"flip-uvs":                   assimp.FlipUVs,
	"flip-winding-order":         assimp.FlipWindingOrder,
	"split-by-bone-count":        assimp.SplitByBoneCount,
	"debone":                     assimp.Debone,
	"global-scale":               assimp.GlobalScale,
	"embed-textures":             assimp.EmbedTextures,
	"force-gen-normals":          assimp.ForceGenNormals,
	"drop-normals":               assimp.DropNormals,
	"gen-bounding-boxes":         assimp.GenBoundingBoxes,
	"convert-to-left-handed":     assimp.ConvertToLeftHanded,
	"realtime-fast":              assimp.PresetRealtimeFast,
	"realtime-quality":           assimp.PresetRealtimeQuality,
	"realtime-max-quality":       assimp.PresetRealtimeMaxQuality,
}

// Default returns the preset used when no file overrides it.
func Default() *Preset {
	return &Preset{
		Name:  "realtime-quality",
		Steps: []string{"realtime-quality"},
	}
}

// Load reads a preset from a YAML file, merging over Default.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading preset from %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading preset from %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset from YAML, merging over Default.
func Parse(data []byte) (*Preset, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if _, err := p.Flags(); err != nil {
		return nil, err
	}
	return p, nil
}

// Flags translates the preset's step names into the post-process bit
// set. Step names form a closed domain; an unrecognized name is an
// error, not a silently dropped bit.
func (p *Preset) Flags() (assimp.PostProcess, error) {
	var flags assimp.PostProcess
	for _, s := range p.Steps {
		bits, ok := stepNames[s]
		if !ok {
			return 0, fmt.Errorf("unknown post-process step %q", s)
		}
		flags |= bits
	}
	return flags, nil
}

// Options returns the importer properties in the form the import calls
// accept, nil when the preset sets none.
func (p *Preset) Options() *assimp.Options {
	if len(p.Properties.Ints) == 0 && len(p.Properties.Floats) == 0 && len(p.Properties.Strings) == 0 {
		return nil
	}
	return &assimp.Options{
		Ints:    p.Properties.Ints,
		Floats:  p.Properties.Floats,
		Strings: p.Properties.Strings,
	}
}

// Import loads the asset at path using the preset's steps and
// properties.
func (p *Preset) Import(path string) (*assimp.Scene, error) {
	flags, err := p.Flags()
	if err != nil {
		return nil, err
	}
	return assimp.ImportFileWith(path, flags, p.Options())
}
