package mediascan

import (
	"strings"
	"testing"
)

func TestFileTypeSet_MatchesAnyCase(t *testing.T) {
	types := DefaultFileTypes()

	for _, ext := range []string{"png", "bmp", "dds", "tga", "mp4", "avi", "mov", "mkv"} {
		variants := []string{
			ext,
			strings.ToUpper(ext),
			strings.ToUpper(ext[:1]) + ext[1:],
			ext[:2] + strings.ToUpper(ext[2:]),
		}

		for _, v := range variants {
			name := "dir/file." + v
			if !types.Matches(name) {
				t.Errorf("Matches(%q) = false, want true", name)
			}
		}
	}
}

func TestFileTypeSet_RejectsOthers(t *testing.T) {
	types := DefaultFileTypes()

	tests := []struct {
		name string
		path string
	}{
		{"text file", "notes.txt"},
		{"jpeg", "photo.jpg"},
		{"backup suffix", "movie.mkv.bak"},
		{"no extension", "png"},
		{"dot file", ".png"},
		{"trailing dot", "movie."},
		{"extension in directory only", "clips.mp4/readme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if types.Matches(tt.path) {
				t.Errorf("Matches(%q) = true, want false", tt.path)
			}
		})
	}
}

func TestNewFileTypeSet_Normalizes(t *testing.T) {
	types := NewFileTypeSet(".PNG", "Mov", "", ".")

	got := types.List()
	want := []string{"mov", "png"}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("List() = %v, want %v", got, want)
	}

	if !types.Matches("a.png") || !types.Matches("b.MOV") {
		t.Error("normalized extensions should match")
	}

	if !(FileTypeSet{}).Empty() {
		t.Error("zero FileTypeSet should be empty")
	}
}
