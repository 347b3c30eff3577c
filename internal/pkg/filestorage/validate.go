package filestorage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Kind identifies an artifact kind accepted by the intake flow.
type Kind string

const (
	KindTranscript Kind = "transcript"
	KindCV         Kind = "cv"
	KindPhoto      Kind = "photo"
)

// Kinds lists every accepted artifact kind.
var Kinds = []Kind{KindTranscript, KindCV, KindPhoto}

// allowedExtensions is the per-kind extension allow-list. Extension
// matching is the sole check; file contents are not inspected.
var allowedExtensions = map[Kind]map[string]bool{
	KindTranscript: {"pdf": true, "doc": true, "docx": true},
	KindCV:         {"pdf": true, "doc": true, "docx": true},
	KindPhoto:      {"jpg": true, "jpeg": true, "png": true},
}

// kindDirs maps each kind to its fixed subdirectory under the upload root.
var kindDirs = map[Kind]string{
	KindTranscript: "transcripts",
	KindCV:         "cvs",
	KindPhoto:      "photos",
}

// ParseKind maps a request path segment to a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := kindDirs[k]
	return k, ok
}

// Dir returns the upload-root subdirectory for the kind.
func (k Kind) Dir() string {
	return kindDirs[k]
}

// AllowedFile reports whether the filename carries an extension permitted
// for the kind. The match is case-insensitive; a name without an
// extension is always rejected.
func AllowedFile(filename string, kind Kind) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	return allowedExtensions[kind][ext]
}

// StorageName derives the collision-resistant, filesystem-safe name a
// stored artifact is written under: owning user id, kind, submission
// timestamp and the sanitized original name. Two uploads of the same
// kind by the same user at different times never collide.
func StorageName(userID int64, kind Kind, at time.Time, original string) string {
	return fmt.Sprintf("%d_%s_%d_%s", userID, kind, at.Unix(), SanitizeFilename(original))
}

// SanitizeFilename strips directory components and replaces every rune
// outside a conservative allow-list with an underscore, defeating path
// traversal and shell-unsafe names.
func SanitizeFilename(name string) string {
	// Drop any path prefix, including Windows-style separators.
	name = filepath.Base(name)
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	out := b.String()
	// ".." and "." must not survive sanitization as a whole name.
	out = strings.Trim(out, ".")
	if out == "" {
		out = "file"
	}
	return out
}
