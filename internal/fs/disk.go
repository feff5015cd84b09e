package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aneshas/peoplegen/core"
)

// DiskFile represents an output file on disk
type DiskFile struct {
	*os.File
}

// Name returns the base name of the file
func (f *DiskFile) Name() string {
	return filepath.Base(f.File.Name())
}

// NewDisk instantiates new disk based file system
func NewDisk() *Disk {
	return &Disk{}
}

// Disk represents disk based file system
type Disk struct{}

// Create creates the named output file for writing and truncates it if it
// already exists. Missing parent directories are created along the way
func (fs *Disk) Create(name string) (core.File, error) {
	dir := filepath.Dir(name)

	if dir != "." {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("could not create output dir: %w", err)
		}
	}

	file, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("could not create output file: %w", err)
	}

	return &DiskFile{file}, nil
}
