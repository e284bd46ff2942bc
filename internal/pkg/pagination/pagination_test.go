package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buttons(items ...int) []Button {
	out := make([]Button, 0, len(items))
	for _, p := range items {
		if p == 0 {
			out = append(out, Button{Ellipsis: true})
			continue
		}
		out = append(out, Button{Page: p})
	}
	return out
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Params
		want Params
	}{
		{"defaults", Params{}, Params{Page: 1, PageSize: 10, SortBy: "created_at", SortOrder: "desc"}},
		{"clamps page size", Params{Page: 3, PageSize: 500, SortBy: "name", SortOrder: "asc"}, Params{Page: 3, PageSize: 100, SortBy: "name", SortOrder: "asc"}},
		{"negative page", Params{Page: -2, PageSize: 25}, Params{Page: 1, PageSize: 25, SortBy: "created_at", SortOrder: "desc"}},
		{"unknown order", Params{Page: 1, PageSize: 1, SortOrder: "up"}, Params{Page: 1, PageSize: 1, SortBy: "created_at", SortOrder: "desc"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	info := Calculate(25, 2, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrev)

	last := Calculate(25, 3, 10)
	assert.False(t, last.HasNext)

	empty := Calculate(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestOffsetAndWindow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))

	start, end := Window(25, Params{Page: 3, PageSize: 10})
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = Window(5, Params{Page: 4, PageSize: 10})
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		current int
		total   int
		want    []Button
	}{
		{"fits", 2, 5, buttons(1, 2, 3, 4, 5)},
		{"head", 1, 10, buttons(1, 2, 3, 4, 5, 0, 10)},
		{"head boundary", 4, 10, buttons(1, 2, 3, 4, 5, 0, 10)},
		{"middle", 5, 10, buttons(1, 0, 3, 4, 5, 0, 10)},
		{"tail", 10, 10, buttons(1, 0, 6, 7, 8, 9, 10)},
		{"tail boundary", 7, 10, buttons(1, 0, 6, 7, 8, 9, 10)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Range(tt.current, tt.total, DefaultButtons))
		})
	}
}
