package assimp

import (
	"errors"
	"path/filepath"
	"testing"
)

func importBoxes(t *testing.T, flags PostProcess) *Scene {
	t.Helper()

	scene, err := ImportFile(filepath.Join("testdata", "two_boxes.obj"), flags)
	if err != nil {
		t.Fatalf("failed to import fixture: %v", err)
	}
	t.Cleanup(scene.Release)
	return scene
}

func TestImportFile(t *testing.T) {
	scene := importBoxes(t, 0)

	meshes := scene.Meshes()
	if len(meshes) == 0 {
		t.Fatal("expected meshes")
	}
	if len(scene.Materials()) == 0 {
		t.Fatal("expected materials")
	}

	for i, mesh := range meshes {
		nv := len(mesh.Vertices())
		if nv == 0 {
			t.Errorf("mesh %d has no vertices", i)
		}
		if int(mesh.MaterialIndex()) >= len(scene.Materials()) {
			t.Errorf("mesh %d material index %d out of range", i, mesh.MaterialIndex())
		}
		for _, face := range mesh.Faces() {
			for _, idx := range face.Indices() {
				if int(idx) >= nv {
					t.Fatalf("mesh %d face index %d out of range", i, idx)
				}
			}
		}
	}
}

func TestImportKeepsQuads(t *testing.T) {
	scene := importBoxes(t, 0)

	// Without triangulation the box faces keep their four corners.
	quads := 0
	for _, mesh := range scene.Meshes() {
		for _, face := range mesh.Faces() {
			if len(face.Indices()) == 4 {
				quads++
			}
		}
	}
	if quads == 0 {
		t.Error("expected quad faces without triangulation")
	}
}

func TestImportTriangulates(t *testing.T) {
	scene := importBoxes(t, Triangulate|SortByPType)

	for i, mesh := range scene.Meshes() {
		if !mesh.PrimitiveTypes().Has(PrimitiveTriangle) {
			t.Errorf("mesh %d not triangulated", i)
		}
		for _, face := range mesh.Faces() {
			if len(face.Indices()) != 3 {
				t.Fatalf("mesh %d has a face with %d indices", i, len(face.Indices()))
			}
		}
	}
}

func TestNodeGraph(t *testing.T) {
	scene := importBoxes(t, 0)

	root := scene.RootNode()
	if _, ok := root.Parent(); ok {
		t.Error("root node should have no parent")
	}

	children := root.Children()
	if len(children) == 0 {
		t.Fatal("expected child nodes for the two objects")
	}

	seen := false
	for _, child := range children {
		parent, ok := child.Parent()
		if !ok {
			t.Fatalf("child %q lost its parent", child.Name())
		}
		if parent != root {
			t.Errorf("child %q has wrong parent %q", child.Name(), parent.Name())
		}
		for _, idx := range child.Meshes() {
			seen = true
			if int(idx) >= len(scene.Meshes()) {
				t.Errorf("node %q mesh index %d out of range", child.Name(), idx)
			}
		}
	}
	if !seen {
		t.Error("no node references a mesh")
	}
}

func TestReleaseTwice(t *testing.T) {
	scene, err := ImportFile(filepath.Join("testdata", "two_boxes.obj"), 0)
	if err != nil {
		t.Fatalf("failed to import fixture: %v", err)
	}

	scene.Release()
	scene.Release()
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join("testdata", "no_such_file.obj"), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var ierr *ImportError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *ImportError, got %T", err)
	}
	if ierr.Message == "" {
		t.Error("expected an error message from the importer")
	}
	if ierr.Source == "" {
		t.Error("expected the failing path in the error")
	}
}

func TestImportMemory(t *testing.T) {
	obj := []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	scene, err := ImportMemory(obj, "obj", Triangulate)
	if err != nil {
		t.Fatalf("failed to import from memory: %v", err)
	}
	defer scene.Release()

	meshes := scene.Meshes()
	if len(meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(meshes))
	}
	if got := len(meshes[0].Vertices()); got != 3 {
		t.Errorf("expected 3 vertices, got %d", got)
	}
	if got := len(meshes[0].Faces()); got != 1 {
		t.Errorf("expected 1 face, got %d", got)
	}
}

func TestImportMemoryEmpty(t *testing.T) {
	_, err := ImportMemory(nil, "obj", 0)
	if err == nil {
		t.Fatal("expected error for empty buffer")
	}

	var ierr *ImportError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected *ImportError, got %T", err)
	}
	if ierr.Source != "memory" {
		t.Errorf("expected source memory, got %q", ierr.Source)
	}
}

func TestVersion(t *testing.T) {
	if Version() == "0.0.0" {
		t.Error("expected a nonzero library version")
	}
}
