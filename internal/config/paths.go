package config

import (
	"os"
	"path/filepath"
	"strings"
)

// UploadRoot resolves the configured upload directory to an absolute path,
// relative paths are anchored at the working directory.
func (c *AppConfig) UploadRoot() string {
	dir := strings.TrimSpace(c.Upload.Dir)
	if dir == "" {
		dir = defaultUploadDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	if wd, err := os.Getwd(); err == nil && wd != "" {
		return filepath.Clean(filepath.Join(wd, dir))
	}
	return filepath.Clean(dir)
}
