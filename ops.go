package pathlist

import (
	"io/fs"
	"time"

	"github.com/jmgilman/go/pathlist/errors"
	"github.com/jmgilman/go/pathlist/fs/core"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

var (
	// ErrIsDirectory is returned by Cp when the source is a directory and a
	// recursive copy was not requested.
	ErrIsDirectory = errors.New(errors.CodeInvalidInput, "source is a directory; use a recursive copy")

	// ErrNotEmpty is returned by Rm for a non-empty directory when a
	// recursive removal was not requested.
	ErrNotEmpty = errors.New(errors.CodeConflict, "directory is not empty; use a recursive removal")
)

// Exists reports whether p exists.
func (ex *Explorer) Exists(p Path) (bool, error) {
	ok, err := ex.fs.Exists(p.String())
	if err != nil {
		return false, errors.WrapFS(err, "exists", p.String())
	}
	return ok, nil
}

// IsDir reports whether p exists and is a directory.
func (ex *Explorer) IsDir(p Path) (bool, error) {
	info, err := ex.stat(p)
	if err != nil || info == nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether p exists and is a regular file.
func (ex *Explorer) IsFile(p Path) (bool, error) {
	info, err := ex.stat(p)
	if err != nil || info == nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// stat returns nil info and nil error for a missing path.
func (ex *Explorer) stat(p Path) (fs.FileInfo, error) {
	info, err := ex.fs.Stat(p.String())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFS(err, "stat", p.String())
	}
	return info, nil
}

// Mkdir creates the directory p. With parents set, missing parents are
// created and an existing directory is not an error.
func (ex *Explorer) Mkdir(p Path, parents bool) (err error) {
	start := time.Now()
	defer func() { logOperation(ex.logger, OpMkdir, p, start, -1, err) }()

	if parents {
		err = ex.fs.MkdirAll(p.String(), dirPerm)
	} else {
		err = ex.fs.Mkdir(p.String(), dirPerm)
	}
	if err != nil {
		return errors.WrapFS(err, "mkdir", p.String())
	}
	return nil
}

// Touch creates p as an empty file, or updates its modification time when it
// already exists.
func (ex *Explorer) Touch(p Path) (err error) {
	start := time.Now()
	defer func() { logOperation(ex.logger, OpTouch, p, start, -1, err) }()

	name := p.String()
	exists, err := ex.fs.Exists(name)
	if err != nil {
		return errors.WrapFS(err, "touch", name)
	}
	if !exists {
		if err := ex.fs.WriteFile(name, nil, filePerm); err != nil {
			return errors.WrapFS(err, "touch", name)
		}
		return nil
	}

	if mfs, ok := ex.fs.(core.MetadataFS); ok {
		now := time.Now()
		if err := mfs.Chtimes(name, now, now); err != nil && !errors.Is(err, core.ErrUnsupported) {
			return errors.WrapFS(err, "touch", name)
		}
	}
	return nil
}

// Cp copies src to dst and returns the path written. A file copied onto an
// existing directory lands inside it. Directories require recursive, are
// never merged into an existing destination and cannot be copied into
// themselves.
func (ex *Explorer) Cp(src, dst Path, recursive bool) (target Path, err error) {
	start := time.Now()
	defer func() {
		logOperation(ex.logger.With("destination", target.String()), OpCopy, src, start, -1, err)
	}()

	info, err := ex.fs.Stat(src.String())
	if err != nil {
		return Path{}, errors.WrapFS(err, "copy", src.String())
	}

	if info.IsDir() {
		if !recursive {
			return Path{}, errors.WithContext(ErrIsDirectory, "path", src.String())
		}
		if err := core.CopyDir(ex.fs, src.String(), dst.String()); err != nil {
			return Path{}, errors.WrapFS(err, "copy", dst.String())
		}
		return dst, nil
	}

	target = dst
	isDir, err := ex.IsDir(dst)
	if err != nil {
		return Path{}, err
	}
	if isDir {
		target = dst.Join(src.Name())
	}

	if err := core.CopyFile(ex.fs, src.String(), target.String()); err != nil {
		return Path{}, errors.WrapFS(err, "copy", target.String())
	}
	return target, nil
}

// Rm removes p. Non-empty directories are only removed when recursive is set.
func (ex *Explorer) Rm(p Path, recursive bool) (err error) {
	start := time.Now()
	defer func() { logOperation(ex.logger, OpRm, p, start, -1, err) }()

	name := p.String()
	info, err := ex.fs.Stat(name)
	if err != nil {
		return errors.WrapFS(err, "remove", name)
	}

	if info.IsDir() {
		if recursive {
			if err := ex.fs.RemoveAll(name); err != nil {
				return errors.WrapFS(err, "remove", name)
			}
			return nil
		}

		entries, err := ex.fs.ReadDir(name)
		if err != nil {
			return errors.WrapFS(err, "remove", name)
		}
		if len(entries) > 0 {
			return errors.WithContextMap(ErrNotEmpty, map[string]interface{}{
				"path":    name,
				"entries": len(entries),
			})
		}
	}

	if err := ex.fs.Remove(name); err != nil {
		return errors.WrapFS(err, "remove", name)
	}
	return nil
}

// Mv moves src to dst and returns the final location. When dst is an existing
// directory, src is moved inside it.
func (ex *Explorer) Mv(src, dst Path) (target Path, err error) {
	start := time.Now()
	defer func() {
		logOperation(ex.logger.With("destination", target.String()), OpMove, src, start, -1, err)
	}()

	target = dst
	isDir, err := ex.IsDir(dst)
	if err != nil {
		return Path{}, err
	}
	if isDir {
		target = dst.Join(src.Name())
	}

	if err := ex.fs.Rename(src.String(), target.String()); err != nil {
		return Path{}, errors.WrapFS(err, "move", src.String())
	}
	return target, nil
}
