package mediascan

import (
	"path/filepath"
	"slices"
	"strings"
)

// defaultFileTypes is the media extension allowlist.
//
//nolint:gochecknoglobals // Config constant
var defaultFileTypes = []string{"png", "bmp", "dds", "tga", "mp4", "avi", "mov", "mkv"}

// FileTypeSet is an immutable set of file extensions, stored lowercase and without a dot.
type FileTypeSet struct {
	exts map[string]struct{}
}

// DefaultFileTypes returns the media allowlist.
func DefaultFileTypes() FileTypeSet {
	return NewFileTypeSet(defaultFileTypes...)
}

// NewFileTypeSet builds a set from extensions given with or without a leading dot.
func NewFileTypeSet(exts ...string) FileTypeSet {
	set := FileTypeSet{exts: make(map[string]struct{}, len(exts))}

	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(e, "."))
		if e == "" {
			continue
		}

		set.exts[e] = struct{}{}
	}

	return set
}

// Empty reports whether the set holds no extensions.
func (s FileTypeSet) Empty() bool {
	return len(s.exts) == 0
}

// Matches reports whether the extension of path is in the set, ignoring case.
func (s FileTypeSet) Matches(path string) bool {
	_, ok := s.exts[strings.ToLower(extension(path))]

	return ok
}

// List returns the extensions in sorted order.
func (s FileTypeSet) List() []string {
	list := make([]string, 0, len(s.exts))
	for e := range s.exts {
		list = append(list, e)
	}

	slices.Sort(list)

	return list
}

// extension returns the extension of the last path element without its dot.
// A name consisting only of a leading dot and a suffix (".png") has no extension.
func extension(path string) string {
	base := filepath.Base(path)

	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}

	return strings.TrimPrefix(ext, ".")
}
