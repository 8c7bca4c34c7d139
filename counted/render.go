package counted

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultFormat quotes strings and prints everything else with %v.
func DefaultFormat(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// String renders the list as "(#<count>) [<items>]", on one line when it
// fits within MaxWidth and one element per line otherwise.
func (l *List[T]) String() string {
	count := len(l.items)
	if count == 0 {
		return "(#0) []"
	}

	format := l.Format
	if format == nil {
		format = DefaultFormat
	}

	prefix := fmt.Sprintf("(#%d) [", count)
	indent := len(prefix)
	budget := l.MaxWidth - indent - 1

	// Single line: stop formatting as soon as the budget is blown.
	var line strings.Builder
	width := 0
	for i, item := range l.items {
		s := format(item)
		if i > 0 {
			s = ", " + s
		}
		line.WriteString(s)
		width += runewidth.StringWidth(s)
		if width > budget {
			break
		}
	}
	if width <= budget {
		return prefix + line.String() + "]"
	}

	// Multi-line: head elements, optional ellipsis, then the last element.
	shown := l.items
	truncated := count > l.MaxLines
	if truncated {
		shown = l.items[:max(l.MaxLines-1, 0)]
	}

	lines := make([]string, 0, len(shown)+2)
	for _, item := range shown {
		lines = append(lines, format(item))
	}
	if truncated {
		lines = append(lines, "...", format(l.items[count-1]))
	}
	last := len(lines) - 1
	for i := 0; i < last; i++ {
		if truncated && i == last-1 {
			continue // the ellipsis line carries no comma
		}
		lines[i] += ","
	}

	return prefix + strings.Join(lines, "\n"+strings.Repeat(" ", indent)) + "]"
}
