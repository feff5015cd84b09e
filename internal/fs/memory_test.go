package fs_test

import (
	"testing"

	"github.com/aneshas/peoplegen/internal/fs"
	"github.com/stretchr/testify/assert"
)

func TestShould_Read_Back_Written_Bytes(t *testing.T) {
	mem := fs.NewInMemory()

	f, err := mem.Create("people.csv")

	assert.NoError(t, err)

	b := []byte("name,age,gender,feedback\n")

	n, err := f.Write(b)

	assert.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, b, mem.Contents("people.csv"))

	assert.NoError(t, f.Close())
}

func TestCreate_Should_Discard_Previous_Contents(t *testing.T) {
	mem := fs.NewInMemory()

	f, _ := mem.Create("people.csv")

	_, _ = f.Write([]byte("stale"))

	_, err := mem.Create("people.csv")

	assert.NoError(t, err)
	assert.Empty(t, mem.Contents("people.csv"))
}

func TestContents_Of_An_Unknown_File_Are_Nil(t *testing.T) {
	mem := fs.NewInMemory()

	assert.Nil(t, mem.Contents("nope.csv"))
}

func TestInMemoryFile_Should_Report_Its_Name(t *testing.T) {
	mem := fs.NewInMemory()

	f, _ := mem.Create("people.csv")

	assert.Equal(t, "people.csv", f.(*fs.InMemoryFile).Name())
}
