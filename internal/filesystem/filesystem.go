// Package filesystem is the file access seam for the readers. Production code
// reads the host filesystem; tests swap in an in-memory afero filesystem.
package filesystem

import (
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// Filesystem is the part of afero.Fs the file reader relies on.
type Filesystem interface {
	Open(name string) (afero.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (afero.File, error)
	Stat(name string) (fs.FileInfo, error)
}

// DefaultFS implements the Filesystem interface on top of afero.OsFs.
// It represents the real, underlying filesystem of the host operating system.
type DefaultFS struct {
	afero.OsFs
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() afero.Fs {
	return afero.NewMemMapFs()
}

var _ Filesystem = DefaultFS{}
