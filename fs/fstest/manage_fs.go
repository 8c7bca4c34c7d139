package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// TestManageFS tests Remove, RemoveAll and Rename.
func TestManageFS(t *testing.T, fsys core.FS, root string) {
	t.Run("RemoveFile", func(t *testing.T) {
		p := mustWrite(t, fsys, root, "rm.txt", "x")
		if err := fsys.Remove(p); err != nil {
			t.Fatalf("Remove(%s): got error %v, want nil", p, err)
		}
		if _, err := fsys.Stat(p); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) after Remove: got error %v, want fs.ErrNotExist", p, err)
		}
	})

	t.Run("RemoveEmptyDirectory", func(t *testing.T) {
		p := mustMkdir(t, fsys, root, "emptydir")
		if err := fsys.Remove(p); err != nil {
			t.Fatalf("Remove(%s): got error %v, want nil", p, err)
		}
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		mustWrite(t, fsys, root, "full/file.txt", "x")
		p := path.Join(root, "full")
		if err := fsys.Remove(p); err == nil {
			t.Errorf("Remove(%s) on non-empty directory: got nil, want error", p)
		}
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := fsys.Remove(path.Join(root, "ghost"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(ghost): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		mustWrite(t, fsys, root, "tree/a/b/c.txt", "x")
		mustWrite(t, fsys, root, "tree/d.txt", "x")
		p := path.Join(root, "tree")
		if err := fsys.RemoveAll(p); err != nil {
			t.Fatalf("RemoveAll(%s): got error %v, want nil", p, err)
		}
		if ok, _ := fsys.Exists(p); ok {
			t.Errorf("Exists(%s) after RemoveAll: got true, want false", p)
		}
		if err := fsys.RemoveAll(p); err != nil {
			t.Errorf("RemoveAll(%s) on missing path: got error %v, want nil", p, err)
		}
	})

	t.Run("RenameFile", func(t *testing.T) {
		src := mustWrite(t, fsys, root, "old.txt", "payload")
		dst := path.Join(root, "new.txt")
		if err := fsys.Rename(src, dst); err != nil {
			t.Fatalf("Rename(%s, %s): got error %v, want nil", src, dst, err)
		}
		if ok, _ := fsys.Exists(src); ok {
			t.Errorf("Exists(%s) after Rename: got true, want false", src)
		}
		data, err := fsys.ReadFile(dst)
		if err != nil || string(data) != "payload" {
			t.Errorf("ReadFile(%s): got (%q, %v), want (%q, nil)", dst, data, err, "payload")
		}
	})

	t.Run("RenameDirectory", func(t *testing.T) {
		mustWrite(t, fsys, root, "olddir/inner.txt", "x")
		src, dst := path.Join(root, "olddir"), path.Join(root, "newdir")
		if err := fsys.Rename(src, dst); err != nil {
			t.Fatalf("Rename(%s, %s): got error %v, want nil", src, dst, err)
		}
		if ok, _ := fsys.Exists(path.Join(dst, "inner.txt")); !ok {
			t.Errorf("Exists(newdir/inner.txt) after Rename: got false, want true")
		}
	})
}
