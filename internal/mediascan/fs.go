package mediascan

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charlievieth/fastwalk"
	"github.com/spf13/afero"
)

// FS is the set of filesystem capabilities the resolver, collector and
// reporter depend on.
type FS interface {
	// Stat returns file information, following symlinks.
	Stat(name string) (fs.FileInfo, error)
	// ReadDir lists the immediate entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)
	// WalkDir walks the tree rooted at root. fn may be called concurrently.
	WalkDir(root string, fn fs.WalkDirFunc) error
	// Open opens a file for reading.
	Open(name string) (io.ReadCloser, error)
	// OpenAppend opens a file for appending, creating it if needed.
	OpenAppend(name string) (io.WriteCloser, error)
}

// OS is the host filesystem. Directory walks run in parallel through fastwalk.
type OS struct{}

// Stat implements FS.
func (OS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir implements FS.
func (OS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// WalkDir implements FS. Symlinks are reported but never followed.
func (OS) WalkDir(root string, fn fs.WalkDirFunc) error {
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	return fastwalk.Walk(conf, root, fn)
}

// Open implements FS.
func (OS) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// OpenAppend implements FS.
func (OS) OpenAppend(name string) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// Afero adapts an afero filesystem, typically an in-memory one.
// Walks are sequential and in lexical order.
type Afero struct {
	Fs afero.Fs
}

// NewMemFS returns an empty in-memory filesystem.
func NewMemFS() Afero {
	return Afero{Fs: afero.NewMemMapFs()}
}

// Stat implements FS.
func (a Afero) Stat(name string) (fs.FileInfo, error) {
	return a.Fs.Stat(name)
}

// ReadDir implements FS.
func (a Afero) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.Fs, name)
	if err != nil {
		return nil, err
	}

	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}

	return entries, nil
}

// WalkDir implements FS.
func (a Afero) WalkDir(root string, fn fs.WalkDirFunc) error {
	return afero.Walk(a.Fs, root, func(path string, info fs.FileInfo, err error) error {
		var d fs.DirEntry
		if info != nil {
			d = fs.FileInfoToDirEntry(info)
		}

		return fn(path, d, err)
	})
}

// Open implements FS.
func (a Afero) Open(name string) (io.ReadCloser, error) {
	return a.Fs.Open(name)
}

// OpenAppend implements FS.
func (a Afero) OpenAppend(name string) (io.WriteCloser, error) {
	return a.Fs.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// maxLineLength bounds a single manifest line.
const maxLineLength = 1 << 20

// readLines returns the lines of a text file without their line terminators.
// A trailing carriage return is dropped as well.
func readLines(fsys FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return lines, nil
}
