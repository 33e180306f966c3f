package preset

import (
	"path/filepath"
	"testing"

	"github.com/Faultbox/go-assimp/pkg/assimp"
)

func TestDefaultPreset(t *testing.T) {
	p := Default()

	flags, err := p.Flags()
	if err != nil {
		t.Fatalf("default preset did not resolve: %v", err)
	}
	if flags != assimp.PresetRealtimeQuality {
		t.Errorf("expected realtime-quality flags, got %#x", uint32(flags))
	}
	if p.Options() != nil {
		t.Error("default preset should carry no properties")
	}
}

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "bake.yaml"))
	if err != nil {
		t.Fatalf("failed to load preset: %v", err)
	}

	if p.Name != "bake" {
		t.Errorf("expected name bake, got %q", p.Name)
	}

	flags, err := p.Flags()
	if err != nil {
		t.Fatalf("failed to resolve steps: %v", err)
	}
	want := assimp.Triangulate | assimp.GenSmoothNormals |
		assimp.PreTransformVertices | assimp.FlipUVs
	if flags != want {
		t.Errorf("expected flags %#x, got %#x", uint32(want), uint32(flags))
	}

	opts := p.Options()
	if opts == nil {
		t.Fatal("expected options from properties")
	}
	if got := opts.Floats["PP_GSN_MAX_SMOOTHING_ANGLE"]; got != 66.0 {
		t.Errorf("expected smoothing angle 66.0, got %v", got)
	}
	if got := opts.Ints["PP_SBP_REMOVE"]; got != 1 {
		t.Errorf("expected PP_SBP_REMOVE 1, got %d", got)
	}
	if got := opts.Strings["IMPORT_OBJ_ERROR_BEHAVIOR"]; got != "skip" {
		t.Errorf("expected error behavior skip, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSteps(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		want  assimp.PostProcess
		fails bool
	}{
		{
			name: "single step",
			yaml: "steps: [triangulate]",
			want: assimp.Triangulate,
		},
		{
			name: "composite step",
			yaml: "steps: [convert-to-left-handed]",
			want: assimp.ConvertToLeftHanded,
		},
		{
			name: "preset plus extra",
			yaml: "steps: [realtime-fast, flip-uvs]",
			want: assimp.PresetRealtimeFast | assimp.FlipUVs,
		},
		{
			name:  "unknown step",
			yaml:  "steps: [frobnicate]",
			fails: true,
		},
		{
			name:  "bad yaml",
			yaml:  "steps: [",
			fails: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.yaml))
			if tt.fails {
				if err == nil {
					t.Fatal("expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			flags, err := p.Flags()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if flags != tt.want {
				t.Errorf("expected flags %#x, got %#x", uint32(tt.want), uint32(flags))
			}
		})
	}
}

func TestStepNamesResolve(t *testing.T) {
	for name, bits := range stepNames {
		if bits == 0 {
			t.Errorf("step %q maps to no bits", name)
		}
	}
}
