package fstest

import (
	"errors"
	"io/fs"
	"path"
	"sort"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// TestReadFS tests Stat, ReadDir, ReadFile and Exists.
func TestReadFS(t *testing.T, fsys core.FS, root string) {
	t.Run("StatFile", func(t *testing.T) {
		p := mustWrite(t, fsys, root, "stat/file.txt", "hello")

		info, err := fsys.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", p, err)
		}
		if info.IsDir() {
			t.Errorf("Stat(%s).IsDir(): got true, want false", p)
		}
		if info.Size() != 5 {
			t.Errorf("Stat(%s).Size(): got %d, want 5", p, info.Size())
		}
		if info.Name() != "file.txt" {
			t.Errorf("Stat(%s).Name(): got %q, want %q", p, info.Name(), "file.txt")
		}
	})

	t.Run("StatNotExist", func(t *testing.T) {
		_, err := fsys.Stat(path.Join(root, "missing"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		mustWrite(t, fsys, root, "list/a.txt", "a")
		mustWrite(t, fsys, root, "list/.hidden", "h")
		mustMkdir(t, fsys, root, "list/sub")

		entries, err := fsys.ReadDir(path.Join(root, "list"))
		if err != nil {
			t.Fatalf("ReadDir(list): got error %v, want nil", err)
		}

		names := make([]string, 0, len(entries))
		dirs := map[string]bool{}
		for _, e := range entries {
			names = append(names, e.Name())
			dirs[e.Name()] = e.IsDir()
		}
		sort.Strings(names)
		want := []string{".hidden", "a.txt", "sub"}
		if len(names) != len(want) {
			t.Fatalf("ReadDir(list): got %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("ReadDir(list)[%d]: got %q, want %q", i, names[i], want[i])
			}
		}
		if !dirs["sub"] || dirs["a.txt"] {
			t.Errorf("ReadDir(list): wrong IsDir flags %v", dirs)
		}
	})

	t.Run("ReadDirNotExist", func(t *testing.T) {
		_, err := fsys.ReadDir(path.Join(root, "nodir"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("ReadDir(nodir): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		p := mustWrite(t, fsys, root, "read.txt", "content")
		data, err := fsys.ReadFile(p)
		if err != nil {
			t.Fatalf("ReadFile(%s): got error %v, want nil", p, err)
		}
		if string(data) != "content" {
			t.Errorf("ReadFile(%s): got %q, want %q", p, data, "content")
		}
	})

	t.Run("Exists", func(t *testing.T) {
		p := mustWrite(t, fsys, root, "exists.txt", "")
		ok, err := fsys.Exists(p)
		if err != nil || !ok {
			t.Errorf("Exists(%s): got (%v, %v), want (true, nil)", p, ok, err)
		}
		ok, err = fsys.Exists(path.Join(root, "nope"))
		if err != nil || ok {
			t.Errorf("Exists(nope): got (%v, %v), want (false, nil)", ok, err)
		}
	})
}
