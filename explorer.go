package pathlist

import (
	"github.com/jmgilman/go/pathlist/counted"
	"github.com/jmgilman/go/pathlist/fs/core"
)

// UnboundedDepth is the depth budget used when a caller asks for unlimited
// recursion. It caps how deep a walk can go on pathological trees such as
// symlink cycles.
const UnboundedDepth = 1 << 30

// Explorer performs listing, tree rendering and file operations against a
// filesystem provider. It keeps no state between calls.
type Explorer struct {
	fs       core.FS
	logger   *Logger
	maxLines int
	maxWidth int
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithLogger sets the logger used for operation records.
func WithLogger(logger *Logger) Option {
	return func(ex *Explorer) { ex.logger = logger }
}

// WithMaxLines sets MaxLines on every list the Explorer returns.
func WithMaxLines(n int) Option {
	return func(ex *Explorer) { ex.maxLines = n }
}

// WithMaxWidth sets MaxWidth on every list the Explorer returns.
func WithMaxWidth(n int) Option {
	return func(ex *Explorer) { ex.maxWidth = n }
}

// New creates an Explorer over fsys.
func New(fsys core.FS, opts ...Option) *Explorer {
	ex := &Explorer{
		fs:       fsys,
		logger:   NewNopLogger(),
		maxLines: counted.DefaultMaxLines,
		maxWidth: counted.DefaultMaxWidth,
	}
	for _, opt := range opts {
		opt(ex)
	}
	return ex
}

// FS returns the filesystem the Explorer operates on.
func (ex *Explorer) FS() core.FS {
	return ex.fs
}

// newList returns an empty list carrying the Explorer's display parameters.
func newList[T any](ex *Explorer) *counted.List[T] {
	return counted.New[T](nil, counted.WithMaxLines(ex.maxLines), counted.WithMaxWidth(ex.maxWidth))
}
