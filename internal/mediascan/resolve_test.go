package mediascan

import (
	"errors"
	"io/fs"
	"testing"
)

func TestResolve(t *testing.T) {
	fsys := NewMemFS()
	writeFile(t, fsys, "/media/clip.mp4", 1)
	writeText(t, fsys, "/lists/paths.txt", "/media\n")
	writeText(t, fsys, "/lists/UPPER.TXT", "/media\n")
	writeText(t, fsys, "/lists/paths.csv", "/media\n")

	tests := []struct {
		name     string
		path     string
		wantKind Kind
		wantPath string
		wantErr  error
	}{
		{"directory", "/media/", KindDirectory, "/media", nil},
		{"manifest", "/lists/paths.txt", KindManifest, "/lists/paths.txt", nil},
		{"manifest extension ignores case", "/lists/UPPER.TXT", KindManifest, "/lists/UPPER.TXT", nil},
		{"wrong manifest extension", "/lists/paths.csv", 0, "", ErrInvalidInput},
		{"media file is not a manifest", "/media/clip.mp4", 0, "", ErrInvalidInput},
		{"missing", "/nope", 0, "", ErrNotFound},
		{"empty", "", 0, "", ErrMissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Resolve(fsys, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Resolve(%q) error = %v, want %v", tt.path, err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.path, err)
			}

			if src.Kind != tt.wantKind || src.Path != tt.wantPath {
				t.Errorf("Resolve(%q) = %+v, want {%s %s}", tt.path, src, tt.wantPath, tt.wantKind)
			}
		})
	}
}

func TestResolve_UnclassifiablePath(t *testing.T) {
	mem := NewMemFS()
	writeFile(t, mem, "/dev/thing", 0)

	fsys := modeFS{Afero: mem, modes: map[string]fs.FileMode{"/dev/thing": fs.ModeDevice}}

	_, err := Resolve(fsys, "/dev/thing")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
