package shaders

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/gogpu/naga"
)

//go:embed wgsl/*.wgsl
var embedded embed.FS

// Embedded contains the shader sources compiled into the binary.
var Embedded fs.FS = mustSub(embedded, "wgsl")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return sub
}

// Loader reads the two WGSL sources of a shader, "<name>.vs.wgsl"
// and "<name>.fs.wgsl". Files are read on every call to Load.
type Loader struct {
	// Directory to read sources from. Defaults to Embedded.
	FS fs.FS

	// Compile sources with naga before they are handed to the device.
	Validate bool
}

func (l Loader) files() fs.FS {
	if l.FS == nil {
		return Embedded
	}

	return l.FS
}

// Load returns the vertex and fragment source of the shader called name.
func (l Loader) Load(name string) (vertex, fragment string, err error) {
	vertex, err = l.read(name + ".vs.wgsl")
	if err != nil {
		return "", "", err
	}

	fragment, err = l.read(name + ".fs.wgsl")
	if err != nil {
		return "", "", err
	}

	return vertex, fragment, nil
}

func (l Loader) read(path string) (string, error) {
	buf, err := fs.ReadFile(l.files(), path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}

	source := string(buf)

	if l.Validate {
		if err := Validate(source); err != nil {
			return "", fmt.Errorf("validate shader %q: %w", path, err)
		}
	}

	return source, nil
}

// Validate parses and compiles a WGSL module.
func Validate(source string) error {
	if _, err := naga.Compile(source); err != nil {
		return err
	}

	return nil
}
