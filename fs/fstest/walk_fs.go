package fstest

import (
	"io/fs"
	"path"
	"testing"

	"github.com/jmgilman/go/pathlist/fs/core"
)

// TestWalkFS tests that Walk visits the root and every descendant in
// lexical order.
func TestWalkFS(t *testing.T, fsys core.FS, root string) {
	t.Run("LexicalOrder", func(t *testing.T) {
		mustWrite(t, fsys, root, "walk/b.txt", "b")
		mustWrite(t, fsys, root, "walk/a/z.txt", "z")
		mustWrite(t, fsys, root, "walk/c.txt", "c")

		base := path.Join(root, "walk")
		var visited []string
		err := fsys.Walk(base, func(p string, _ fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, p)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v, want nil", base, err)
		}

		want := []string{
			base,
			path.Join(base, "a"),
			path.Join(base, "a/z.txt"),
			path.Join(base, "b.txt"),
			path.Join(base, "c.txt"),
		}
		if len(visited) != len(want) {
			t.Fatalf("Walk(%s): got %v, want %v", base, visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Errorf("Walk(%s)[%d]: got %q, want %q", base, i, visited[i], want[i])
			}
		}
	})

	t.Run("SkipDir", func(t *testing.T) {
		mustWrite(t, fsys, root, "skip/keep.txt", "k")
		mustWrite(t, fsys, root, "skip/drop/x.txt", "x")

		base := path.Join(root, "skip")
		var visited []string
		err := fsys.Walk(base, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "drop" {
				return fs.SkipDir
			}
			visited = append(visited, p)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%s): got error %v, want nil", base, err)
		}
		if len(visited) != 2 {
			t.Errorf("Walk(%s) with SkipDir: got %v, want root and keep.txt", base, visited)
		}
	})
}
