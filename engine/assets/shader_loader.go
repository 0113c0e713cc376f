package assets

import (
	"fmt"
	"io/fs"
)

// LoadShader reads GLSL source from fsys. The text is passed through untouched.
func LoadShader(fsys fs.FS, name string) (string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	return string(b), nil
}

// LoadProgramSources reads the base+".vert" and base+".frag" pair.
func LoadProgramSources(fsys fs.FS, base string) (vs, frag string, err error) {
	if vs, err = LoadShader(fsys, base+".vert"); err != nil {
		return "", "", err
	}
	if frag, err = LoadShader(fsys, base+".frag"); err != nil {
		return "", "", err
	}
	return vs, frag, nil
}
