package mediascan

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ManifestExt is the extension a manifest file must carry.
const ManifestExt = ".txt"

// Kind classifies a resolved source.
type Kind int

const (
	// KindDirectory is a directory scanned recursively.
	KindDirectory Kind = iota + 1
	// KindManifest is a text file listing paths to scan.
	KindManifest
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Source is a classified input path.
type Source struct {
	// Path is the cleaned input path.
	Path string `json:"path" yaml:"path"`
	// Kind is the classification of Path.
	Kind Kind `json:"kind" yaml:"kind"`
}

// Resolve classifies path as a directory or a manifest file.
func Resolve(fsys FS, path string) (Source, error) {
	if path == "" {
		return Source{}, ErrMissingArgument
	}

	// filepath.Clean handles both separators and converts to native format
	path = filepath.Clean(path)

	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("%w: %q", ErrNotFound, path)
		}

		return Source{}, fmt.Errorf("%w: %q: %w", ErrNotFound, path, err)
	}

	switch {
	case info.IsDir():
		return Source{Path: path, Kind: KindDirectory}, nil
	case info.Mode().IsRegular():
		if !strings.EqualFold(filepath.Ext(path), ManifestExt) {
			return Source{}, fmt.Errorf("%w: input file must be of type %s: %q", ErrInvalidInput, ManifestExt, path)
		}

		return Source{Path: path, Kind: KindManifest}, nil
	default:
		return Source{}, fmt.Errorf("%w: file path could not be determined: %q", ErrInvalidInput, path)
	}
}
