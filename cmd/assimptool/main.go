// assimptool is a CLI utility for inspecting 3D assets through the
// Open Asset Import Library.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/go-assimp/internal/logger"
	"github.com/Faultbox/go-assimp/pkg/assimp"
	"github.com/Faultbox/go-assimp/pkg/preset"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tree":
		cmdTree(args)
	case "materials", "mat":
		cmdMaterials(args)
	case "version":
		fmt.Printf("assimp %s\n", assimp.Version())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`assimptool - 3D asset inspection utility

Usage:
  assimptool <command> [options]

Commands:
  info <file>       Show scene summary (meshes, materials, animations)
  tree <file>       Print the node hierarchy
  materials <file>  Show material properties and texture slots
  version           Show the linked import library version

Options:
  -preset <file>    Import preset YAML (default: realtime-quality)
  -v                Verbose importer logging

Examples:
  assimptool info model.glb
  assimptool tree -v scene.fbx
  assimptool materials -preset bake.yaml model.obj`)
}

// importScene loads the asset named by the flag set's first positional
// argument, honoring the shared -preset and -v options.
func importScene(fs *flag.FlagSet, args []string, usage string) *assimp.Scene {
	presetPath := fs.String("preset", "", "Import preset YAML file")
	verbose := fs.Bool("v", false, "Verbose importer logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	p := preset.Default()
	if *presetPath != "" {
		loaded, err := preset.Load(*presetPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		p = loaded
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	assimp.EnableLogging(logger.Log, *verbose)
	defer assimp.DisableLogging()

	scene, err := p.Import(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return scene
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	scene := importScene(fs, args, "Usage: assimptool info [options] <file>")
	defer scene.Release()

	meshes := scene.Meshes()
	var vertices, faces int
	for _, m := range meshes {
		vertices += len(m.Vertices())
		faces += len(m.Faces())
	}

	fmt.Printf("File:       %s\n", fs.Arg(0))
	fmt.Printf("Meshes:     %d (%d vertices, %d faces)\n", len(meshes), vertices, faces)
	fmt.Printf("Materials:  %d\n", len(scene.Materials()))
	fmt.Printf("Animations: %d\n", len(scene.Animations()))
	fmt.Printf("Textures:   %d embedded\n", len(scene.Textures()))
	fmt.Printf("Lights:     %d\n", len(scene.Lights()))
	fmt.Printf("Cameras:    %d\n", len(scene.Cameras()))

	if flags := scene.Flags(); flags != 0 {
		fmt.Printf("Flags:      %#x\n", uint32(flags))
	}
	if md, ok := scene.Metadata(); ok {
		fmt.Println("Metadata:")
		for key, val := range md.All() {
			fmt.Printf("  %-20s %v\n", key, val.Value())
		}
	}
}

func cmdTree(args []string) {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	scene := importScene(fs, args, "Usage: assimptool tree [options] <file>")
	defer scene.Release()

	printNode(scene.RootNode(), 0)
}

func printNode(n assimp.Node, depth int) {
	name := n.Name()
	if name == "" {
		name = "(unnamed)"
	}
	indent := strings.Repeat("  ", depth)
	if meshes := n.Meshes(); len(meshes) > 0 {
		fmt.Printf("%s%s  meshes=%v\n", indent, name, meshes)
	} else {
		fmt.Printf("%s%s\n", indent, name)
	}
	for _, child := range n.Children() {
		printNode(child, depth+1)
	}
}

func cmdMaterials(args []string) {
	fs := flag.NewFlagSet("materials", flag.ExitOnError)
	scene := importScene(fs, args, "Usage: assimptool materials [options] <file>")
	defer scene.Release()

	for i, mat := range scene.Materials() {
		props := mat.Properties()
		fmt.Printf("[%d] %s\n", i, props.Name)
		fmt.Printf("    shading=%s opacity=%.2f twosided=%v\n",
			props.ShadingMode, props.Opacity, props.TwoSided)
		fmt.Printf("    diffuse=%v specular=%v\n",
			props.ColorDiffuse, props.ColorSpecular)

		for _, semantic := range []assimp.TextureType{
			assimp.TextureTypeDiffuse,
			assimp.TextureTypeSpecular,
			assimp.TextureTypeNormals,
			assimp.TextureTypeEmissive,
		} {
			for slot := 0; slot < mat.TextureCount(semantic); slot++ {
				tex, ok := mat.TextureProperties(semantic, slot)
				if !ok {
					continue
				}
				fmt.Printf("    %s[%d] %s (mapping=%s uv=%d)\n",
					semantic, slot, tex.TextureRef, tex.Mapping, tex.UVChannel)
			}
		}
	}
}
