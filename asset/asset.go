package asset

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed *.png
var builtin embed.FS

// layered serves files from disk when present, falling back to the built-in art
type layered struct {
	disk fs.FS
}

func (l layered) Open(name string) (fs.File, error) {
	if l.disk != nil {
		f, err := l.disk.Open(name)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return builtin.Open(name)
}

// FS returns the sheet file system, preferring files under dir over the built-in art
// An empty or missing dir serves the built-in art only
func FS(dir string) fs.FS {
	if dir == "" {
		return layered{}
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return layered{}
	}
	return layered{disk: os.DirFS(dir)}
}
