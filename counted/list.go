package counted

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/jmgilman/go/pathlist/errors"
)

const (
	// DefaultMaxLines is the default number of element lines in a multi-line preview.
	DefaultMaxLines = 15
	// DefaultMaxWidth is the default width budget of a single-line preview.
	DefaultMaxWidth = 120
)

// ErrSampleTooLarge is returned when more elements are requested from
// Sample than the list holds.
var ErrSampleTooLarge = errors.New(errors.CodeInvalidInput, "sample larger than population")

// Formatter renders a single element for String.
type Formatter func(v any) string

// List is an ordered sequence with count-aware, bounded text rendering.
// The zero value is an empty list with default display parameters.
type List[T any] struct {
	items []T

	// MaxLines bounds the number of element lines in a multi-line preview.
	MaxLines int
	// MaxWidth bounds the width of a single-line preview.
	MaxWidth int
	// Format renders elements. Nil uses DefaultFormat.
	Format Formatter
}

// Option configures a List.
type Option func(*display)

type display struct {
	maxLines int
	maxWidth int
	format   Formatter
}

// WithMaxLines sets the maximum number of element lines in a preview.
func WithMaxLines(n int) Option {
	return func(d *display) { d.maxLines = n }
}

// WithMaxWidth sets the maximum width of a single-line preview.
func WithMaxWidth(n int) Option {
	return func(d *display) { d.maxWidth = n }
}

// WithFormatter sets how elements are rendered.
func WithFormatter(f Formatter) Option {
	return func(d *display) { d.format = f }
}

// New creates a List holding a copy of items.
func New[T any](items []T, opts ...Option) *List[T] {
	d := display{maxLines: DefaultMaxLines, maxWidth: DefaultMaxWidth}
	for _, opt := range opts {
		opt(&d)
	}
	return &List[T]{
		items:    slices.Clone(items),
		MaxLines: d.maxLines,
		MaxWidth: d.maxWidth,
		Format:   d.format,
	}
}

// Of creates a List from its arguments with default display parameters.
func Of[T any](items ...T) *List[T] {
	return New(items)
}

// derive returns a list holding items with the same display parameters as l.
func (l *List[T]) derive(items []T) *List[T] {
	return &List[T]{
		items:    items,
		MaxLines: l.MaxLines,
		MaxWidth: l.MaxWidth,
		Format:   l.Format,
	}
}

// Count returns the number of elements.
func (l *List[T]) Count() int {
	return len(l.items)
}

// Len is an alias of Count.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Extend appends every element of other.
func (l *List[T]) Extend(other *List[T]) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// At returns the element at index i. Negative indices count from the end.
// It panics if i is out of range.
func (l *List[T]) At(i int) T {
	if i < 0 {
		i += len(l.items)
	}
	return l.items[i]
}

// Slice returns the elements in [start, end) as a new List. Negative bounds
// count from the end and out-of-range bounds are clamped, so Slice never panics.
func (l *List[T]) Slice(start, end int) *List[T] {
	start, end = l.clamp(start), l.clamp(end)
	if end < start {
		end = start
	}
	return l.derive(slices.Clone(l.items[start:end]))
}

func (l *List[T]) clamp(i int) int {
	n := len(l.items)
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// Pick gathers the elements at the given indices, in the given order, into a
// new List. Indices may repeat and may be negative. It panics if any index is
// out of range.
func (l *List[T]) Pick(indices ...int) *List[T] {
	items := make([]T, 0, len(indices))
	for _, i := range indices {
		items = append(items, l.At(i))
	}
	return l.derive(items)
}

// Sample returns k elements drawn uniformly at random without replacement.
func (l *List[T]) Sample(k int) (*List[T], error) {
	return l.sample(rand.Perm, k)
}

// SampleRand is like Sample but draws from r.
func (l *List[T]) SampleRand(r *rand.Rand, k int) (*List[T], error) {
	return l.sample(r.Perm, k)
}

func (l *List[T]) sample(perm func(int) []int, k int) (*List[T], error) {
	if k < 0 || k > len(l.items) {
		return nil, errors.WithContextMap(ErrSampleTooLarge, map[string]interface{}{
			"requested": k,
			"count":     len(l.items),
		})
	}
	return l.Pick(perm(len(l.items))[:k]...), nil
}

// Items returns a copy of the elements.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

// All iterates over index/element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether both lists hold the same elements in the same order.
// Display parameters are not compared. A nil list equals an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return slices.Equal(elements(a), elements(b))
}

func elements[T any](l *List[T]) []T {
	if l == nil {
		return nil
	}
	return l.items
}

type wireList[T any] struct {
	Count int `json:"count" yaml:"count"`
	Items []T `json:"items" yaml:"items"`
}

func (l *List[T]) wire() wireList[T] {
	items := l.items
	if items == nil {
		items = []T{}
	}
	return wireList[T]{Count: len(items), Items: items}
}

// MarshalJSON encodes the list as {"count": n, "items": [...]}.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(l.wire())
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to marshal list")
	}
	return data, nil
}

// MarshalYAML encodes the list as a mapping with count and items keys.
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.wire(), nil
}

// GoString makes %#v print the same preview as String.
func (l *List[T]) GoString() string {
	return l.String()
}

var _ fmt.Stringer = (*List[int])(nil)
