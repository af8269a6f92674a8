package blob

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"careerconnect/internal/common"
)

// PublicPrefix is the URL prefix disk locators are served under.
const PublicPrefix = "/uploads/"

// Disk stores files under a local root directory and hands out locators of
// the form /uploads/<dir>/<name>.
type Disk struct {
	root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Disk{root: root}, nil
}

// Root is the directory served under PublicPrefix.
func (d *Disk) Root() string {
	return d.root
}

func (d *Disk) Save(_ context.Context, dir string, file File) (string, error) {
	name := common.NewUUID().String() + strings.ToLower(filepath.Ext(file.Name))
	if err := os.MkdirAll(filepath.Join(d.root, dir), 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(d.root, dir, name)
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file.Reader); err != nil {
		_ = out.Close()
		_ = os.Remove(target)
		return "", err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(target)
		return "", err
	}
	return PublicPrefix + path.Join(dir, name), nil
}

func (d *Disk) Delete(_ context.Context, locator string) error {
	rel, ok := strings.CutPrefix(locator, PublicPrefix)
	if !ok {
		return os.ErrNotExist
	}
	rel = path.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return os.ErrNotExist
	}
	return os.Remove(filepath.Join(d.root, filepath.FromSlash(rel)))
}
