package fstest

import (
	"errors"
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// TestWriteFS tests Create, WriteFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, fsys core.FS, root string) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		p := path.Join(root, "created.txt")
		f, err := fsys.Create(p)
		if err != nil {
			t.Fatalf("Create(%s): got error %v, want nil", p, err)
		}
		if _, err := f.Write([]byte("data")); err != nil {
			t.Fatalf("Write: got error %v, want nil", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v, want nil", err)
		}

		data, err := fsys.ReadFile(p)
		if err != nil || string(data) != "data" {
			t.Errorf("ReadFile(%s): got (%q, %v), want (%q, nil)", p, data, err, "data")
		}
	})

	t.Run("WriteFileTruncates", func(t *testing.T) {
		p := mustWrite(t, fsys, root, "trunc.txt", "a much longer body")
		if err := fsys.WriteFile(p, []byte("short"), 0644); err != nil {
			t.Fatalf("WriteFile(%s): got error %v, want nil", p, err)
		}
		data, _ := fsys.ReadFile(p)
		if string(data) != "short" {
			t.Errorf("ReadFile(%s): got %q, want %q", p, data, "short")
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		p := path.Join(root, "single")
		if err := fsys.Mkdir(p, 0755); err != nil {
			t.Fatalf("Mkdir(%s): got error %v, want nil", p, err)
		}
		info, err := fsys.Stat(p)
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(%s): want existing directory, got err %v", p, err)
		}
	})

	t.Run("MkdirExisting", func(t *testing.T) {
		p := mustMkdir(t, fsys, root, "twice")
		if err := fsys.Mkdir(p, 0755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(%s) on existing: got error %v, want fs.ErrExist", p, err)
		}
	})

	t.Run("MkdirMissingParent", func(t *testing.T) {
		p := path.Join(root, "no/parent")
		if err := fsys.Mkdir(p, 0755); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Mkdir(%s): got error %v, want fs.ErrNotExist", p, err)
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		p := path.Join(root, "x/y/z")
		if err := fsys.MkdirAll(p, 0755); err != nil {
			t.Fatalf("MkdirAll(%s): got error %v, want nil", p, err)
		}
		if err := fsys.MkdirAll(p, 0755); err != nil {
			t.Errorf("MkdirAll(%s) again: got error %v, want nil", p, err)
		}
	})
}
