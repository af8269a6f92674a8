package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskSaveAndDelete(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	locator, err := disk.Save(context.Background(), "applications", File{
		Name:        "cv.PDF",
		ContentType: "application/pdf",
		Size:        2,
		Reader:      strings.NewReader("cv"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(locator, PublicPrefix+"applications/"))
	assert.True(t, strings.HasSuffix(locator, ".pdf"))

	rel := strings.TrimPrefix(locator, PublicPrefix)
	data, err := os.ReadFile(filepath.Join(disk.Root(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	assert.Equal(t, "cv", string(data))

	require.NoError(t, disk.Delete(context.Background(), locator))
	_, err = os.Stat(filepath.Join(disk.Root(), filepath.FromSlash(rel)))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskDeleteRejectsForeignLocators(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, disk.Delete(context.Background(), "https://storage.googleapis.com/bucket/object"))
	assert.Error(t, disk.Delete(context.Background(), PublicPrefix+"../etc/passwd"))
	assert.Error(t, disk.Delete(context.Background(), PublicPrefix))
}

func TestDiskSaveGeneratesUniqueNames(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	first, err := disk.Save(context.Background(), "d", File{Name: "a.pdf", Reader: strings.NewReader("1")})
	require.NoError(t, err)
	second, err := disk.Save(context.Background(), "d", File{Name: "a.pdf", Reader: strings.NewReader("2")})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
