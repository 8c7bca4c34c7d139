package pathlist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/pathlist/errors"
	"github.com/jmgilman/go/pathlist/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsIsDirIsFile(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{
		"/d/file.txt": "x",
		"/d/sub/":     "",
	})

	tests := []struct {
		path   string
		exists bool
		isDir  bool
		isFile bool
	}{
		{"/d/file.txt", true, false, true},
		{"/d/sub", true, true, false},
		{"/d/missing", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := NewPath(tt.path)

			exists, err := ex.Exists(p)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)

			isDir, err := ex.IsDir(p)
			require.NoError(t, err)
			assert.Equal(t, tt.isDir, isDir)

			isFile, err := ex.IsFile(p)
			require.NoError(t, err)
			assert.Equal(t, tt.isFile, isFile)
		})
	}
}

func TestMkdir(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{"/d/": ""})

	require.NoError(t, ex.Mkdir(NewPath("/d/one"), false))
	isDir, err := ex.IsDir(NewPath("/d/one"))
	require.NoError(t, err)
	assert.True(t, isDir)

	err = ex.Mkdir(NewPath("/d/one"), false)
	require.Error(t, err)
	assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))

	err = ex.Mkdir(NewPath("/d/x/y/z"), false)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	require.NoError(t, ex.Mkdir(NewPath("/d/x/y/z"), true))
	require.NoError(t, ex.Mkdir(NewPath("/d/x/y/z"), true), "parents tolerates existing directories")
}

func TestTouch(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{"/d/kept.txt": "keep me"})

	require.NoError(t, ex.Touch(NewPath("/d/new.txt")))
	data, err := ex.FS().ReadFile("/d/new.txt")
	require.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, ex.Touch(NewPath("/d/kept.txt")))
	data, err = ex.FS().ReadFile("/d/kept.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data), "touch must not truncate")
}

func TestCp_File(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{
		"/src/a.txt": "alpha",
		"/dst/":      "",
	})

	t.Run("to new name", func(t *testing.T) {
		got, err := ex.Cp(NewPath("/src/a.txt"), NewPath("/dst/b.txt"), false)
		require.NoError(t, err)
		assert.Equal(t, "/dst/b.txt", got.String())

		data, err := ex.FS().ReadFile("/dst/b.txt")
		require.NoError(t, err)
		assert.Equal(t, "alpha", string(data))
	})

	t.Run("into existing directory", func(t *testing.T) {
		got, err := ex.Cp(NewPath("/src/a.txt"), NewPath("/dst"), false)
		require.NoError(t, err)
		assert.Equal(t, "/dst/a.txt", got.String())

		exists, err := ex.Exists(got)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := ex.Cp(NewPath("/src/missing"), NewPath("/dst/x"), false)
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestCp_Directory(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{
		"/src/tree/a.txt":     "a",
		"/src/tree/sub/b.txt": "b",
		"/taken/":             "",
	})

	t.Run("requires recursive", func(t *testing.T) {
		_, err := ex.Cp(NewPath("/src/tree"), NewPath("/copy"), false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIsDirectory)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("recursive", func(t *testing.T) {
		got, err := ex.Cp(NewPath("/src/tree"), NewPath("/copy"), true)
		require.NoError(t, err)
		assert.Equal(t, "/copy", got.String())

		list, err := ex.RlsStrings(NewPath("/copy"), "", UnboundedDepth)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/copy/a.txt", "/copy/sub", "/copy/sub/b.txt"}, list.Items())
	})

	t.Run("existing destination", func(t *testing.T) {
		_, err := ex.Cp(NewPath("/src/tree"), NewPath("/taken"), true)
		require.Error(t, err)
		assert.Equal(t, errors.CodeAlreadyExists, errors.GetCode(err))
	})
}

func TestCp_PreservesPermissions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o750))

	ex := New(billy.NewLocal())
	dst, err := ex.Cp(NewPath(filepath.ToSlash(src)), NewPath(filepath.ToSlash(filepath.Join(dir, "copy.sh"))), false)
	require.NoError(t, err)

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(filepath.FromSlash(dst.String()))
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
}

func TestRm(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{
		"/d/file.txt":    "",
		"/d/empty/":      "",
		"/d/full/a.txt":  "",
		"/d/full/sub/b":  "",
		"/d/other/c.txt": "",
	})

	t.Run("file", func(t *testing.T) {
		require.NoError(t, ex.Rm(NewPath("/d/file.txt"), false))
		exists, err := ex.Exists(NewPath("/d/file.txt"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty directory", func(t *testing.T) {
		require.NoError(t, ex.Rm(NewPath("/d/empty"), false))
	})

	t.Run("non-empty directory without recursive", func(t *testing.T) {
		err := ex.Rm(NewPath("/d/full"), false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotEmpty)
		assert.Equal(t, errors.CodeConflict, errors.GetCode(err))

		var perr errors.PlatformError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "/d/full", perr.Context()["path"])

		exists, err := ex.Exists(NewPath("/d/full/a.txt"))
		require.NoError(t, err)
		assert.True(t, exists, "nothing is removed")
	})

	t.Run("recursive", func(t *testing.T) {
		require.NoError(t, ex.Rm(NewPath("/d/full"), true))
		exists, err := ex.Exists(NewPath("/d/full"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing", func(t *testing.T) {
		err := ex.Rm(NewPath("/d/missing"), true)
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestMv(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{
		"/d/a.txt":    "a",
		"/d/b.txt":    "b",
		"/d/archive/": "",
	})

	t.Run("rename", func(t *testing.T) {
		got, err := ex.Mv(NewPath("/d/a.txt"), NewPath("/d/renamed.txt"))
		require.NoError(t, err)
		assert.Equal(t, "/d/renamed.txt", got.String())

		data, err := ex.FS().ReadFile("/d/renamed.txt")
		require.NoError(t, err)
		assert.Equal(t, "a", string(data))
	})

	t.Run("into directory", func(t *testing.T) {
		got, err := ex.Mv(NewPath("/d/b.txt"), NewPath("/d/archive"))
		require.NoError(t, err)
		assert.Equal(t, "/d/archive/b.txt", got.String())

		exists, err := ex.Exists(NewPath("/d/b.txt"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := ex.Mv(NewPath("/d/missing"), NewPath("/d/elsewhere"))
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	})
}

func TestOps_LogFailures(t *testing.T) {
	var buf bytes.Buffer
	ex := newMemExplorer(t, map[string]string{"/d/full/a": ""}, WithLogger(NewLogger(&buf, LogLevelDebug)))

	require.Error(t, ex.Rm(NewPath("/d/full"), false))
	assert.Contains(t, buf.String(), "operation=remove")
	assert.Contains(t, buf.String(), "code=CONFLICT")

	buf.Reset()
	require.NoError(t, ex.Touch(NewPath("/d/new")))
	assert.Contains(t, buf.String(), "operation=touch")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestCp_IntoOwnSubtree(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{"/a/f.txt": "f"})

	for _, dst := range []string{"/a/b", "/a/b/c", "/a"} {
		t.Run(dst, func(t *testing.T) {
			_, err := ex.Cp(NewPath("/a"), NewPath(dst), true)
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}

	list, err := ex.RlsStrings(NewPath("/a"), "", UnboundedDepth)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/f.txt"}, list.Items(), "nothing is created")
}

func TestCp_SiblingWithSharedPrefix(t *testing.T) {
	ex := newMemExplorer(t, map[string]string{"/a/f.txt": "f"})

	got, err := ex.Cp(NewPath("/a"), NewPath("/ab"), true)
	require.NoError(t, err)
	assert.Equal(t, "/ab", got.String())
}
