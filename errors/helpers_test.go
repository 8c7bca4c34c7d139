package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "platform error", err: New(CodeNotFound, "missing"), want: CodeNotFound},
		{name: "wrapped platform error", err: Wrap(New(CodeIO, "eio"), CodeInternal, "walk"), want: CodeInternal},
		{name: "standard error", err: stderrors.New("standard"), want: CodeUnknown},
		{name: "nil error", err: nil, want: CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	require.True(t, IsRetryable(New(CodeIO, "eio")))
	require.False(t, IsRetryable(New(CodeForbidden, "denied")))
	require.False(t, IsRetryable(stderrors.New("plain")))
	require.False(t, IsRetryable(nil))
}

func TestIsAs_StandardLibraryCompatibility(t *testing.T) {
	err := WrapFS(fs.ErrPermission, "readdir", "/root")

	require.True(t, Is(err, fs.ErrPermission))
	require.True(t, stderrors.Is(err, fs.ErrPermission))

	var platformErr PlatformError
	require.True(t, As(err, &platformErr))
	require.Equal(t, CodeForbidden, platformErr.Code())
}

func TestClassification_DefaultsToPermanent(t *testing.T) {
	require.Equal(t, ClassificationPermanent, getDefaultClassification(ErrorCode("NOPE")))
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
}

func TestCause(t *testing.T) {
	root := stderrors.New("disk on fire")
	wrapped := Wrap(fmt.Errorf("read: %w", root), CodeIO, "scan failed")

	require.Equal(t, root, Cause(wrapped))
	require.Nil(t, Cause(root))
	require.Nil(t, Cause(nil))
	require.Nil(t, Cause(New(CodeConflict, "no cause")))
}
