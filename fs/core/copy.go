package core

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// CopyFile copies the regular file src to dst, replacing dst if it exists.
// Permission bits are preserved. When fsys implements MetadataFS the
// modification time is carried over as well.
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid}
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return err
	}

	if mfs, ok := fsys.(MetadataFS); ok {
		err := mfs.Chtimes(dst, info.ModTime(), info.ModTime())
		if err != nil && !errors.Is(err, ErrUnsupported) {
			return err
		}
	}
	return nil
}

// CopyDir recursively copies the directory src to dst. dst must not exist
// and must not lie inside src.
// Directory permissions are preserved and files are copied with CopyFile.
func CopyDir(fsys FS, src, dst string) error {
	src, dst = path.Clean(src), path.Clean(dst)
	if within(dst, src) {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrInvalid}
	}

	exists, err := fsys.Exists(dst)
	if err != nil {
		return err
	}
	if exists {
		return &fs.PathError{Op: "copy", Path: dst, Err: fs.ErrExist}
	}

	return fsys.Walk(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		target := path.Join(dst, relative(src, p))

		if !d.IsDir() {
			return CopyFile(fsys, p, target)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return fsys.MkdirAll(target, info.Mode().Perm())
	})
}

// within reports whether p is root itself or lies below it. Both paths must
// be clean.
func within(p, root string) bool {
	switch {
	case p == root || root == "/":
		return true
	case root == ".":
		return !path.IsAbs(p) && p != ".." && !strings.HasPrefix(p, "../")
	}
	return strings.HasPrefix(p, strings.TrimSuffix(root, "/")+"/")
}

// relative returns p relative to root, where p was produced by walking root.
func relative(root, p string) string {
	if root == "." {
		if p == "." {
			return ""
		}
		return p
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
}
