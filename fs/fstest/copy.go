package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// TestCopy tests core.CopyFile and core.CopyDir against the provider.
func TestCopy(t *testing.T, fsys core.FS, root string) {
	t.Run("CopyFile", func(t *testing.T) {
		src := mustWrite(t, fsys, root, "orig.txt", "copy me")
		dst := path.Join(root, "copy.txt")
		if err := core.CopyFile(fsys, src, dst); err != nil {
			t.Fatalf("CopyFile(%s, %s): got error %v, want nil", src, dst, err)
		}
		data, err := fsys.ReadFile(dst)
		if err != nil || string(data) != "copy me" {
			t.Errorf("ReadFile(%s): got (%q, %v), want (%q, nil)", dst, data, err, "copy me")
		}
		if ok, _ := fsys.Exists(src); !ok {
			t.Errorf("Exists(%s) after CopyFile: got false, want true", src)
		}
	})

	t.Run("CopyFileRejectsDirectory", func(t *testing.T) {
		src := mustMkdir(t, fsys, root, "adir")
		err := core.CopyFile(fsys, src, path.Join(root, "bdir"))
		if !errors.Is(err, fs.ErrInvalid) {
			t.Errorf("CopyFile(dir): got error %v, want fs.ErrInvalid", err)
		}
	})

	t.Run("CopyDir", func(t *testing.T) {
		mustWrite(t, fsys, root, "srcdir/one.txt", "1")
		mustWrite(t, fsys, root, "srcdir/nested/two.txt", "2")
		mustMkdir(t, fsys, root, "srcdir/empty")

		src, dst := path.Join(root, "srcdir"), path.Join(root, "dstdir")
		if err := core.CopyDir(fsys, src, dst); err != nil {
			t.Fatalf("CopyDir(%s, %s): got error %v, want nil", src, dst, err)
		}
		for _, name := range []string{"one.txt", "nested/two.txt", "empty"} {
			if ok, _ := fsys.Exists(path.Join(dst, name)); !ok {
				t.Errorf("Exists(dstdir/%s) after CopyDir: got false, want true", name)
			}
		}
	})

	t.Run("CopyDirExistingDestination", func(t *testing.T) {
		src := mustMkdir(t, fsys, root, "from")
		dst := mustMkdir(t, fsys, root, "to")
		if err := core.CopyDir(fsys, src, dst); !errors.Is(err, fs.ErrExist) {
			t.Errorf("CopyDir onto existing: got error %v, want fs.ErrExist", err)
		}
	})
}
