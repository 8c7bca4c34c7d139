package pathlist

import (
	"io/fs"
	"strings"
	"time"

	"github.com/jmgilman/go/pathlist/counted"
	"github.com/jmgilman/go/pathlist/errors"
	"github.com/jmgilman/go/pathlist/fs/core"
)

// hiddenPrefix marks entries that listings skip.
const hiddenPrefix = "."

// Ls lists the direct, non-hidden children of dir whose full path contains
// pattern. A missing dir yields an empty list.
func (ex *Explorer) Ls(dir Path, pattern string) (*counted.List[Path], error) {
	return walk(ex, dir, pattern, 1, identity)
}

// LsStrings is Ls returning path strings.
func (ex *Explorer) LsStrings(dir Path, pattern string) (*counted.List[string], error) {
	return walk(ex, dir, pattern, 1, Path.String)
}

// Rls lists non-hidden entries below dir, descending at most depth levels.
// Depth 1 is equivalent to Ls and a negative depth means UnboundedDepth.
// Hidden directories are not descended into.
func (ex *Explorer) Rls(dir Path, pattern string, depth int) (*counted.List[Path], error) {
	return walk(ex, dir, pattern, recursionDepth(depth), identity)
}

// RlsStrings is Rls returning path strings.
func (ex *Explorer) RlsStrings(dir Path, pattern string, depth int) (*counted.List[string], error) {
	return walk(ex, dir, pattern, recursionDepth(depth), Path.String)
}

func recursionDepth(depth int) int {
	if depth < 0 {
		return UnboundedDepth
	}
	return depth
}

func identity(p Path) Path { return p }

func walk[T any](ex *Explorer, dir Path, pattern string, depth int, convert func(Path) T) (*counted.List[T], error) {
	start := time.Now()
	result := newList[T](ex)

	err := scan(ex.fs, dir, pattern, depth, convert, result)
	logOperation(ex.logger.With("pattern", pattern, "depth", depth), OpList, dir, start, result.Count(), err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// scan appends matching entries of dir to out, recursing while depth > 1.
// Results from subdirectories are spliced in right after their directory.
func scan[T any](fsys core.ReadFS, dir Path, pattern string, depth int, convert func(Path) T, out *counted.List[T]) error {
	name := dir.String()

	exists, err := fsys.Exists(name)
	if err != nil {
		return errors.WrapFS(err, "exists", name)
	}
	if !exists {
		return nil
	}

	entries, err := fsys.ReadDir(name)
	if err != nil {
		return errors.WrapFS(err, "readdir", name)
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), hiddenPrefix) {
			continue
		}

		p := dir.Join(entry.Name())
		if strings.Contains(p.String(), pattern) {
			out.Append(convert(p))
		}
		if depth <= 1 {
			continue
		}
		if followDir(fsys, entry, p) {
			if err := scan(fsys, p, pattern, depth-1, convert, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// followDir reports whether entry is a directory, resolving symbolic links.
// A link that cannot be resolved, whether dangling or looping, is a leaf.
func followDir(fsys core.ReadFS, entry fs.DirEntry, p Path) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}

	info, err := fsys.Stat(p.String())
	return err == nil && info.IsDir()
}
