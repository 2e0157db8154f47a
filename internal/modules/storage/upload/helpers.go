package upload

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// buildFileName combines the monotonic stamp with the sanitized original name,
// falling back to a random suffix plus the original extension when the name
// sanitizes to nothing.
func buildFileName(stamp int64, original string) string {
	prefix := strconv.FormatInt(stamp, 10)

	base := safeName(original)
	if base == "" || base == strings.TrimSpace(filepath.Ext(original)) {
		ext := strings.ToLower(filepath.Ext(strings.TrimSpace(original)))
		if ext == "" || len(ext) > 10 || safeName(ext) == "" {
			ext = ".dat"
		}
		return prefix + "-" + randomSuffix() + ext
	}
	return prefix + "-" + base
}

// randomSuffix yields a short random token for payloads without a usable name.
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// safeName returns the base name of raw when it is a plain path segment
// (alphanumerics, hyphens, underscores, dots), replacing spaces with
// underscores first; anything else yields "".
func safeName(raw string) string {
	name := filepath.Base(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	if !isSafeSegment(name) {
		return ""
	}
	return name
}

// isSafeSegment returns true when s contains only alphanumerics, hyphens,
// underscores, or dots.
func isSafeSegment(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}
