package fs

import (
	"bytes"

	"github.com/aneshas/peoplegen/core"
)

// InMemoryFile represents an in memory output file
type InMemoryFile struct {
	name   string
	buffer *bytes.Buffer
}

func (f *InMemoryFile) Write(p []byte) (int, error) {
	return f.buffer.Write(p)
}

func (f *InMemoryFile) Close() error {
	return nil
}

// Name returns the name the file was created under
func (f *InMemoryFile) Name() string {
	return f.name
}

// NewInMemory instantiates new in memory file system which can be
// used for testing purposes
func NewInMemory() *InMemory {
	return &InMemory{
		files: map[string]*InMemoryFile{},
	}
}

// InMemory represents an in memory file system
type InMemory struct {
	files map[string]*InMemoryFile
}

// Create creates a fresh in memory file under name
// An existing file under the same name is discarded which matches
// the truncate on create disk behaviour
func (i *InMemory) Create(name string) (core.File, error) {
	f := &InMemoryFile{
		name:   name,
		buffer: bytes.NewBuffer([]byte{}),
	}

	i.files[name] = f

	return f, nil
}

// Contents returns the bytes written to the named file so far
func (i *InMemory) Contents(name string) []byte {
	f, ok := i.files[name]
	if !ok {
		return nil
	}

	return f.buffer.Bytes()
}
