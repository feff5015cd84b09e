package testutil

import (
	"github.com/aneshas/peoplegen/core/testutil/mocks"
	"github.com/stretchr/testify/mock"
)

// FS is a mock FS
type FS struct {
	*mocks.FS

	File *mocks.File

	Path string
}

// NewFS creates new mock FS
func NewFS() *FS {
	return &FS{
		FS:   &mocks.FS{},
		Path: "out/people.csv",
	}
}

// WithMockWriteSupport setup
func (fs *FS) WithMockWriteSupport() *FS {
	var file mocks.File

	file.On("Write", mock.Anything).Return(func(p []byte) int { return len(p) }, nil)
	file.On("Close").Return(nil)

	fs.On("Create", fs.Path).Return(&file, nil)

	fs.File = &file

	return fs
}

// WithFailingCreate setup
func (fs *FS) WithFailingCreate(err error) *FS {
	fs.On("Create", fs.Path).Return(nil, err)

	return fs
}

// WithFailingWrites setup
func (fs *FS) WithFailingWrites(err error) *FS {
	var file mocks.File

	file.On("Write", mock.Anything).Return(0, err)
	file.On("Close").Return(nil)

	fs.On("Create", fs.Path).Return(&file, nil)

	fs.File = &file

	return fs
}

// WithFailingClose setup
func (fs *FS) WithFailingClose(err error) *FS {
	var file mocks.File

	file.On("Write", mock.Anything).Return(func(p []byte) int { return len(p) }, nil)
	file.On("Close").Return(err)

	fs.On("Create", fs.Path).Return(&file, nil)

	fs.File = &file

	return fs
}
