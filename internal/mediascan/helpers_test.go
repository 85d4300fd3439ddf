package mediascan

import (
	"io/fs"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
)

// writeFile creates name with size bytes in fsys, creating parent directories.
func writeFile(t *testing.T, fsys Afero, name string, size int) {
	t.Helper()

	if err := fsys.Fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(name), err)
	}

	if err := afero.WriteFile(fsys.Fs, name, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// writeText creates name with the given content in fsys.
func writeText(t *testing.T, fsys Afero, name, content string) {
	t.Helper()

	if err := fsys.Fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(name), err)
	}

	if err := afero.WriteFile(fsys.Fs, name, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// modeFS reports a fixed file mode for selected paths.
type modeFS struct {
	Afero
	modes map[string]fs.FileMode
}

func (m modeFS) Stat(name string) (fs.FileInfo, error) {
	info, err := m.Afero.Stat(name)
	if err != nil {
		return nil, err
	}

	if mode, ok := m.modes[name]; ok {
		return modeInfo{FileInfo: info, mode: mode}, nil
	}

	return info, nil
}

type modeInfo struct {
	fs.FileInfo
	mode fs.FileMode
}

func (i modeInfo) Mode() fs.FileMode { return i.mode }

func (i modeInfo) IsDir() bool { return i.mode.IsDir() }

func sorted(list []string) []string {
	out := slices.Clone(list)
	slices.Sort(out)

	return out
}
