package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/jmgilman/go/pathlist/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// NewLocal creates a go-billy backed local filesystem rooted at "/".
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/"), fsType: core.FSTypeLocal}
}

// NewMemory creates an empty go-billy backed in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), fsType: core.FSTypeMemory}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the filesystem type the provider was created with.
func (f *FS) Type() core.FSType {
	return f.fsType
}

// normalize converts paths to use forward slashes consistently.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// ReadFS

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	file, err := f.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// ReadDir returns the entries of the named directory.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	file, err := f.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return io.ReadAll(file)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFS

// Create creates or truncates the named file for writing.
func (f *FS) Create(name string) (core.File, error) {
	name = normalize(name)
	file, err := f.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &File{file: file, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(f.bfs, normalize(name), data, perm)
}

// Mkdir creates a single directory. The parent must already exist.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.ToSlash(filepath.Dir(name))
	if parent != "." && parent != "/" {
		if _, err := f.bfs.Stat(parent); err != nil {
			return err
		}
	}
	// MkdirAll only creates name itself here since the parent was verified.
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

// ManageFS

// Remove removes the named file or empty directory.
func (f *FS) Remove(name string) error {
	return f.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
func (f *FS) RemoveAll(path string) error {
	return util.RemoveAll(f.bfs, normalize(path))
}

// Rename renames (moves) oldpath to newpath.
func (f *FS) Rename(oldpath, newpath string) error {
	return f.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// WalkFS

// Walk walks the file tree rooted at root in lexical order, calling walkFn
// for each file or directory in the tree, including root.
func (f *FS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := f.bfs.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = f.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (f *FS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := f.bfs.ReadDir(path)
	if err != nil {
		if err = walkFn(path, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		next := normalize(filepath.Join(path, entry.Name()))
		if err := f.walk(next, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// MetadataFS

// Lstat returns file info without following symbolic links.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	s, ok := f.bfs.(billy.Symlink)
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: core.ErrUnsupported}
	}
	return s.Lstat(normalize(name))
}

// Chmod changes the mode of the named file.
func (f *FS) Chmod(name string, mode fs.FileMode) error {
	c, ok := f.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: core.ErrUnsupported}
	}
	return c.Chmod(normalize(name), mode)
}

// Chtimes changes the access and modification times of the named file.
func (f *FS) Chtimes(name string, atime, mtime time.Time) error {
	c, ok := f.bfs.(billy.Change)
	if !ok {
		return &fs.PathError{Op: "chtimes", Path: name, Err: core.ErrUnsupported}
	}
	return c.Chtimes(normalize(name), atime, mtime)
}

// Compile-time interface checks.
var (
	_ core.FS         = (*FS)(nil)
	_ core.MetadataFS = (*FS)(nil)
)
