// Package fstest provides a conformance suite for core.FS providers.
//
// pathlist relies on a handful of provider behaviors (missing paths report
// fs.ErrNotExist, Remove refuses non-empty directories, Walk visits entries
// in lexical order). The suite pins those down so a new provider can be
// checked before it is handed to an Explorer.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return myprovider.New(), "/"
//	    })
//	}
package fstest

import (
	"path"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// Factory returns a fresh filesystem together with an existing, empty
// directory inside it. All test fixtures are created below that directory.
type Factory func(t *testing.T) (core.FS, string)

// TestSuite runs every conformance group against filesystems produced by newFS.
// Each group receives its own filesystem.
func TestSuite(t *testing.T, newFS Factory) {
	t.Run("ReadFS", func(t *testing.T) {
		fsys, root := newFS(t)
		TestReadFS(t, fsys, root)
	})
	t.Run("WriteFS", func(t *testing.T) {
		fsys, root := newFS(t)
		TestWriteFS(t, fsys, root)
	})
	t.Run("ManageFS", func(t *testing.T) {
		fsys, root := newFS(t)
		TestManageFS(t, fsys, root)
	})
	t.Run("WalkFS", func(t *testing.T) {
		fsys, root := newFS(t)
		TestWalkFS(t, fsys, root)
	})
	t.Run("Copy", func(t *testing.T) {
		fsys, root := newFS(t)
		TestCopy(t, fsys, root)
	})
}

// mustWrite creates name below root with the given content, creating parents.
func mustWrite(t *testing.T, fsys core.FS, root, name, content string) string {
	t.Helper()
	p := path.Join(root, name)
	if err := fsys.MkdirAll(path.Dir(p), 0755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", path.Dir(p), err)
	}
	if err := fsys.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%s): setup failed: %v", p, err)
	}
	return p
}

// mustMkdir creates the directory name below root, creating parents.
func mustMkdir(t *testing.T, fsys core.FS, root, name string) string {
	t.Helper()
	p := path.Join(root, name)
	if err := fsys.MkdirAll(p, 0755); err != nil {
		t.Fatalf("MkdirAll(%s): setup failed: %v", p, err)
	}
	return p
}
