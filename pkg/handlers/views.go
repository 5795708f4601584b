package handlers

import (
	"bytes"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/eknkc/pug"
)

// viewsDir opens pug templates from a directory anywhere on disk, relative or absolute
type viewsDir string

func (d viewsDir) Open(name string) (io.Reader, error) {
	data, err := os.ReadFile(filepath.Join(string(d), filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// compileView compiles a template from the configured views directory
func compileView(dir, name string) (*template.Template, error) {
	return pug.CompileFile(name, pug.Options{Dir: viewsDir(dir)})
}
