package pathlist

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/jmgilman/go/pathlist/errors"
)

// treeIndentStep is how far each level is indented relative to its parent.
const treeIndentStep = 6

type treeConfig struct {
	indent int
	depth  int
	echo   io.Writer
}

// TreeOption configures Tree.
type TreeOption func(*treeConfig)

// WithIndent sets the indentation of the root line.
func WithIndent(n int) TreeOption {
	return func(c *treeConfig) { c.indent = n }
}

// WithDepth sets how many directory levels below the root are rendered.
// Depth 0 renders only the root line and depth -1 renders nothing at all.
func WithDepth(depth int) TreeOption {
	return func(c *treeConfig) { c.depth = depth }
}

// WithEcho writes every line to w as soon as it is produced.
func WithEcho(w io.Writer) TreeOption {
	return func(c *treeConfig) { c.echo = w }
}

// Tree renders root and its descendants as an indented outline, one
// "|--[F] name" or "|--[D] name" line per entry, children sorted by name.
// Unlike listings, Tree shows hidden entries.
func (ex *Explorer) Tree(root Path, opts ...TreeOption) (string, error) {
	cfg := treeConfig{depth: UnboundedDepth}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	var b strings.Builder
	err := ex.renderTree(&b, root, cfg.indent, cfg.depth, cfg.echo)
	logOperation(ex.logger, OpTree, root, start, -1, err)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (ex *Explorer) renderTree(b *strings.Builder, root Path, indent, depth int, echo io.Writer) error {
	if depth == -1 {
		return nil
	}

	name := root.String()
	info, err := ex.fs.Stat(name)
	if err != nil {
		return errors.WrapFS(err, "stat", name)
	}

	marker := "[F]"
	if info.IsDir() {
		marker = "[D]"
	}
	line := strings.Repeat(" ", indent) + "|--" + marker + " " + root.Name() + "\n"
	b.WriteString(line)
	if echo != nil {
		if _, err := io.WriteString(echo, line); err != nil {
			return errors.Wrapf(err, errors.CodeIO, "failed to echo tree line for %s", name)
		}
	}

	if !info.IsDir() || depth <= 0 {
		return nil
	}

	entries, err := ex.fs.ReadDir(name)
	if err != nil {
		return errors.WrapFS(err, "readdir", name)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	for _, child := range names {
		if err := ex.renderTree(b, root.Join(child), indent+treeIndentStep, depth-1, echo); err != nil {
			return err
		}
	}
	return nil
}
