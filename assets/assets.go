package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
)

var (
	//go:embed all:levels profiles.yaml
	assetFS embed.FS
)

// ProfilesFile is the revision profile document, relative to the data dir.
const ProfilesFile = "profiles.yaml"

// overlayFS serves files from a directory on disk and falls back to the
// embedded copy, so edited levels and profiles win without a rebuild.
type overlayFS struct {
	disk     fs.FS
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if o.disk != nil {
		if f, err := o.disk.Open(name); err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}

// DataFS returns the level and profile files, disk first.
func DataFS() fs.FS {
	return NewOverlay(config.Paths.Data)
}

// NewOverlay layers the directory dir over the embedded data. An empty or
// missing dir serves only the embedded files.
func NewOverlay(dir string) fs.FS {
	o := overlayFS{embedded: assetFS}
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			o.disk = os.DirFS(dir)
		}
	}
	return o
}

// LoadLevel reads a .json or .tmx room through DataFS.
func LoadLevel(path string) (*leveldata.Level, error) {
	lvl, err := leveldata.Load(DataFS(), path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return lvl, nil
}

// LoadProfiles reads the profile document. An empty path or ProfilesFile
// reads the data dir's copy, which may be absent; any other path was asked
// for explicitly and must be readable.
func LoadProfiles(path string) ([]byte, error) {
	if path != "" && path != ProfilesFile {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("assets: profiles: %w", err)
		}
		return data, nil
	}

	data, err := fs.ReadFile(DataFS(), ProfilesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: profiles: %w", err)
	}
	return data, nil
}
