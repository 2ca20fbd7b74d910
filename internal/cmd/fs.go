package cmd

import (
	"io/fs"
	"os"
)

const fileMode = 0o644

type fileSystem interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// osFS resolves names with the os package, so absolute and ../ paths work.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
