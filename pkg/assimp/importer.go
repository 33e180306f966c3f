package assimp

/*
#include <stdlib.h>
#include <assimp/cimport.h>
#include <assimp/scene.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ImportError reports a failed import attempt. Message carries the
// import library's last-error text, which is process-global state:
// concurrent imports from multiple goroutines race on it, so serialize
// imports if the message matters.
type ImportError struct {
	Source  string // file path, or "memory" for buffer imports
	Message string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("assimp: importing %s: %s", e.Source, e.Message)
}

func lastError() string {
	return C.GoString(C.aiGetErrorString())
}

// Options carries importer properties applied to a single import call,
// keyed by the library's configuration names (e.g.
// "PP_GSN_MAX_SMOOTHING_ANGLE"). The zero value applies nothing.
type Options struct {
	Ints    map[string]int
	Floats  map[string]float32
	Strings map[string]string
}

// store builds a per-call foreign property store. The caller releases
// it once the import returns.
func (o *Options) store() *C.struct_aiPropertyStore {
	ps := C.aiCreatePropertyStore()
	for k, v := range o.Ints {
		ck := C.CString(k)
		C.aiSetImportPropertyInteger(ps, ck, C.int(v))
		C.free(unsafe.Pointer(ck))
	}
	for k, v := range o.Floats {
		ck := C.CString(k)
		C.aiSetImportPropertyFloat(ps, ck, C.ai_real(v))
		C.free(unsafe.Pointer(ck))
	}
	for k, v := range o.Strings {
		ck := C.CString(k)
		var s C.struct_aiString
		setStr(&s, v)
		C.aiSetImportPropertyString(ps, ck, &s)
		C.free(unsafe.Pointer(ck))
	}
	return ps
}

// ImportFile reads and post-processes the asset at path. The call
// blocks until the importer finishes; there is no cancellation. The
// returned scene owns all memory of the imported graph.
func ImportFile(path string, flags PostProcess) (*Scene, error) {
	return ImportFileWith(path, flags, nil)
}

// ImportFileWith is ImportFile with per-call importer properties.
func ImportFileWith(path string, flags PostProcess, opts *Options) (*Scene, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var p *C.struct_aiScene
	if opts == nil {
		p = C.aiImportFile(cpath, C.uint(flags))
	} else {
		ps := opts.store()
		defer C.aiReleasePropertyStore(ps)
		p = C.aiImportFileExWithProperties(cpath, C.uint(flags), nil, ps)
	}
	if p == nil {
		return nil, &ImportError{Source: path, Message: lastError()}
	}
	return newScene(p), nil
}

// ImportMemory reads and post-processes an asset from an in-memory
// buffer. hint is the file extension of the contained format, without
// the dot (e.g. "obj"); it may be empty, but several importers rely on
// it. Cross-file references such as .obj material libraries cannot be
// resolved for memory imports.
func ImportMemory(data []byte, hint string, flags PostProcess) (*Scene, error) {
	return ImportMemoryWith(data, hint, flags, nil)
}

// ImportMemoryWith is ImportMemory with per-call importer properties.
func ImportMemoryWith(data []byte, hint string, flags PostProcess, opts *Options) (*Scene, error) {
	if len(data) == 0 {
		return nil, &ImportError{Source: "memory", Message: "empty buffer"}
	}
	chint := C.CString(hint)
	defer C.free(unsafe.Pointer(chint))
	buf := (*C.char)(unsafe.Pointer(&data[0]))

	var p *C.struct_aiScene
	if opts == nil {
		p = C.aiImportFileFromMemory(buf, C.uint(len(data)), C.uint(flags), chint)
	} else {
		ps := opts.store()
		defer C.aiReleasePropertyStore(ps)
		p = C.aiImportFileFromMemoryWithProperties(buf, C.uint(len(data)), C.uint(flags), chint, ps)
	}
	if p == nil {
		return nil, &ImportError{Source: "memory", Message: lastError()}
	}
	return newScene(p), nil
}
