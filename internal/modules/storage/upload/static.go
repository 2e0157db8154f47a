package upload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

// RegisterStatic mounts the read-only byte-stream endpoint for stored
// attachments: GET /uploads/*filepath. The on-disk layout mirrors the URL
// space, so serving is a safe join below the store root.
func (s *Store) RegisterStatic(r gin.IRouter) {
	r.GET("/uploads/*filepath", func(c *gin.Context) {
		rel := strings.TrimPrefix(c.Param("filepath"), "/")
		path, ok := s.resolveStatic(rel)
		if !ok {
			response.NotFound(c)
			return
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			response.NotFound(c)
			return
		}
		c.Header("Cache-Control", "public, max-age=31536000")
		c.File(path)
	})
}

// resolveStatic validates every path segment and joins below the root.
func (s *Store) resolveStatic(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}
	segments := strings.Split(rel, "/")
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." || !isSafeSegment(seg) {
			return "", false
		}
	}
	return filepath.Join(append([]string{s.root}, segments...)...), true
}
