package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aneshas/peoplegen/internal/fs"
	"github.com/stretchr/testify/assert"
)

func TestDiskFS_Should_Create_A_Fresh_Output_File(t *testing.T) {
	disk := fs.NewDisk()

	out := filepath.Join(t.TempDir(), "people.csv")

	file, err := disk.Create(out)

	assert.NoError(t, err)
	assert.NotNil(t, file)
	assert.FileExists(t, out)

	assert.NoError(t, file.Close())
}

func TestDiskFS_Should_Create_Missing_Parent_Directories(t *testing.T) {
	disk := fs.NewDisk()

	out := filepath.Join(t.TempDir(), "data", "out", "people.csv")

	file, err := disk.Create(out)

	assert.NoError(t, err)
	assert.FileExists(t, out)

	assert.NoError(t, file.Close())
}

func TestDiskFS_Should_Truncate_An_Existing_Output_File(t *testing.T) {
	disk := fs.NewDisk()

	out := filepath.Join(t.TempDir(), "people.csv")

	assert.NoError(t, os.WriteFile(out, []byte("stale contents"), 0644))

	file, err := disk.Create(out)

	assert.NoError(t, err)
	assert.NoError(t, file.Close())

	b, err := os.ReadFile(out)

	assert.NoError(t, err)
	assert.Empty(t, b)
}

func TestDiskFS_Should_Report_An_Unwritable_Location_As_An_Error(t *testing.T) {
	disk := fs.NewDisk()

	// an existing directory cannot be created as a file
	_, err := disk.Create(t.TempDir())

	assert.Error(t, err)
}

func TestDiskFile_Should_Report_Its_Base_Name(t *testing.T) {
	disk := fs.NewDisk()

	out := filepath.Join(t.TempDir(), "people.csv")

	file, err := disk.Create(out)

	assert.NoError(t, err)
	assert.Equal(t, "people.csv", file.(*fs.DiskFile).Name())

	assert.NoError(t, file.Close())
}
