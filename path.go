package pathlist

import (
	"os"
	"slices"
	"strings"
)

const separator = "/"

// Path is an immutable filesystem location expressed as a sequence of
// segments. Absolute paths start with the "/" segment. The zero value is the
// empty relative path ".".
//
// Path never touches the filesystem; methods that change a path return a new
// value.
type Path struct {
	parts []string
}

// NewPath parses s into a Path. Both "/" and the OS separator split segments,
// empty and "." segments are dropped and ".." is kept as-is.
func NewPath(s string) Path {
	return FromParts(s)
}

// FromParts builds a Path by joining parts. Each part is parsed on its own,
// so a part may contain separators; an absolute part discards everything
// before it.
func FromParts(parts ...string) Path {
	var out []string
	for _, part := range parts {
		out = appendParsed(out, part)
	}
	return Path{parts: out}
}

func appendParsed(parts []string, s string) []string {
	if os.PathSeparator != '/' {
		s = strings.ReplaceAll(s, string(os.PathSeparator), separator)
	}
	if strings.HasPrefix(s, separator) {
		parts = []string{separator}
	}
	for _, seg := range strings.Split(s, separator) {
		if seg == "" || seg == "." {
			continue
		}
		parts = append(parts, seg)
	}
	return parts
}

// Parts returns a copy of the path's segments.
func (p Path) Parts() []string {
	return slices.Clone(p.parts)
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool {
	return len(p.parts) > 0 && p.parts[0] == separator
}

// String returns the forward-slash form of the path, "." for the empty path.
func (p Path) String() string {
	switch {
	case len(p.parts) == 0:
		return "."
	case p.IsAbs():
		return separator + strings.Join(p.parts[1:], separator)
	default:
		return strings.Join(p.parts, separator)
	}
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.parts, other.parts)
}

// Join returns p extended with elems. An absolute element replaces the path.
func (p Path) Join(elems ...string) Path {
	return FromParts(append([]string{p.String()}, elems...)...)
}

// JoinPath returns p extended with other.
func (p Path) JoinPath(other Path) Path {
	if other.IsAbs() {
		return other
	}
	return Path{parts: append(p.Parts(), other.parts...)}
}

// Name returns the final segment, or "" for the root and the empty path.
func (p Path) Name() string {
	if len(p.parts) == 0 || (len(p.parts) == 1 && p.IsAbs()) {
		return ""
	}
	return p.parts[len(p.parts)-1]
}

// Suffix returns the extension of the final segment including its dot.
// Leading dots of hidden names are not treated as extensions.
func (p Path) Suffix() string {
	name := p.Name()
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// Stem returns the final segment without its suffix.
func (p Path) Stem() string {
	return strings.TrimSuffix(p.Name(), p.Suffix())
}

// Parent returns the path without its final segment. The parent of the root
// is the root and the parent of a single relative segment is ".".
func (p Path) Parent() Path {
	if p.Name() == "" {
		return p
	}
	return Path{parts: slices.Clone(p.parts[:len(p.parts)-1])}
}

// WithName returns the path with its final segment replaced by name.
// Paths without a name are returned unchanged.
func (p Path) WithName(name string) Path {
	if p.Name() == "" {
		return p
	}
	return p.Parent().Join(name)
}

// WithStem returns the path with the stem of its final segment replaced.
func (p Path) WithStem(stem string) Path {
	return p.WithName(stem + p.Suffix())
}

// WithSuffix returns the path with its suffix replaced. An empty suffix
// removes it.
func (p Path) WithSuffix(suffix string) Path {
	return p.WithName(p.Stem() + suffix)
}

// Has reports whether seg is one of the path's segments. Only whole segments
// match; "ol" is not in "/old/file".
func (p Path) Has(seg string) bool {
	return slices.Contains(p.parts, seg)
}

// HasAny reports whether at least one of segs is a segment of the path.
func (p Path) HasAny(segs ...string) bool {
	return slices.ContainsFunc(segs, p.Has)
}

// HasAll reports whether every one of segs is a segment of the path.
func (p Path) HasAll(segs ...string) bool {
	for _, seg := range segs {
		if !p.Has(seg) {
			return false
		}
	}
	return true
}

// Change returns a path in which every segment equal to old is replaced by
// new. Segments that merely contain old are left alone.
func (p Path) Change(old, new string) Path {
	parts := make([]string, len(p.parts))
	for i, part := range p.parts {
		if part == old {
			part = new
		}
		parts[i] = part
	}
	return FromParts(parts...)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(text []byte) error {
	*p = NewPath(string(text))
	return nil
}
