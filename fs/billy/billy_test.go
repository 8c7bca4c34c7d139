package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmgilman/go/pathlist/fs/core"
	"github.com/jmgilman/go/pathlist/fs/fstest"
)

// TestNewLocal verifies NewLocal creates a local filesystem.
func TestNewLocal(t *testing.T) {
	fs := NewLocal()
	if fs.Unwrap() == nil {
		t.Fatal("NewLocal() has nil billy filesystem")
	}
	if fs.Type() != core.FSTypeLocal {
		t.Errorf("Type() = %v, want %v", fs.Type(), core.FSTypeLocal)
	}
}

// TestNewMemory verifies NewMemory creates an in-memory filesystem.
func TestNewMemory(t *testing.T) {
	fs := NewMemory()
	if fs.Unwrap() == nil {
		t.Fatal("NewMemory() has nil billy filesystem")
	}
	if fs.Type() != core.FSTypeMemory {
		t.Errorf("Type() = %v, want %v", fs.Type(), core.FSTypeMemory)
	}
}

// TestLocalFS_Conformance runs the conformance suite inside a temp directory.
func TestLocalFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewLocal(), filepath.ToSlash(t.TempDir())
	})
}

// TestMemoryFS_Conformance runs the conformance suite against memfs.
func TestMemoryFS_Conformance(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		fs := NewMemory()
		if err := fs.MkdirAll("/fstest", 0755); err != nil {
			t.Fatalf("MkdirAll(/fstest) error = %v", err)
		}
		return fs, "/fstest"
	})
}

// TestLocalFS_SeesRealFiles verifies paths are resolved against the OS root.
func TestLocalFS_SeesRealFiles(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "real.txt")
	if err := os.WriteFile(name, []byte("on disk"), 0644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	fs := NewLocal()
	data, err := fs.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", name, err)
	}
	if string(data) != "on disk" {
		t.Errorf("ReadFile(%s) = %q, want %q", name, data, "on disk")
	}
}

// TestMemoryFS_Open verifies Open returns a readable File.
func TestMemoryFS_Open(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/test.txt", []byte("test data"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	f, err := fs.Open("/test.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	file, ok := f.(*File)
	if !ok {
		t.Fatalf("Open() returned type %T, want *File", f)
	}
	if file.Name() != "/test.txt" {
		t.Errorf("Name() = %q, want %q", file.Name(), "/test.txt")
	}
	info, err := file.Stat()
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() != int64(len("test data")) {
		t.Errorf("Stat().Size() = %d, want %d", info.Size(), len("test data"))
	}
}

// TestMemoryFS_ReadDirEntries verifies ReadDir returns usable fs.DirEntry values.
func TestMemoryFS_ReadDirEntries(t *testing.T) {
	fs := NewMemory()
	if err := fs.MkdirAll("/a/b", 0755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := fs.WriteFile("/a/file.txt", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	entries, err := fs.ReadDir("/a")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ReadDir() returned %d entries, want 2", len(entries))
	}
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info == nil {
			t.Errorf("DirEntry.Info() = (%v, %v), want info", info, err)
		}
		if entry.IsDir() != (entry.Type()&iofs.ModeDir != 0) {
			t.Errorf("DirEntry %q: IsDir() and Type() disagree", entry.Name())
		}
	}
}

// TestMemoryFS_Chtimes verifies metadata support degrades to ErrUnsupported.
func TestMemoryFS_Chtimes(t *testing.T) {
	fs := NewMemory()
	if err := fs.WriteFile("/t.txt", nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	err := fs.Chtimes("/t.txt", mtime, mtime)
	if errors.Is(err, core.ErrUnsupported) {
		return
	}
	if err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}
	info, err := fs.Stat("/t.txt")
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Errorf("ModTime() = %v, want %v", info.ModTime(), mtime)
	}
}
