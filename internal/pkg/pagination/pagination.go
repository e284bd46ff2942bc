package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "created_at"
	DefaultButtons  = 7

	SortAsc  = "asc"
	SortDesc = "desc"
)

// PageSizeOptions are the page sizes offered to clients.
var PageSizeOptions = []int{10, 25, 50, 100}

type Params struct {
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type Info struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// Button is one entry of a page selector: a page number or an ellipsis.
type Button struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Normalize clamps page and page size and fills sort defaults.
func Normalize(p Params) Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	return p
}

func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}

func Calculate(total, page, pageSize int) Info {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return Info{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Range lays out at most maxButtons page buttons around current, using
// ellipses to elide the head or tail of long ranges.
func Range(current, totalPages, maxButtons int) []Button {
	if maxButtons <= 0 {
		maxButtons = DefaultButtons
	}
	if totalPages <= maxButtons {
		return pages(1, totalPages)
	}

	half := maxButtons / 2
	leftEllipsis := current > half+1
	rightEllipsis := current < totalPages-half

	switch {
	case !leftEllipsis && rightEllipsis:
		out := pages(1, maxButtons-2)
		return append(out, Button{Ellipsis: true}, Button{Page: totalPages})
	case leftEllipsis && !rightEllipsis:
		out := []Button{{Page: 1}, {Ellipsis: true}}
		start := totalPages - (maxButtons - 3)
		return append(out, pages(start, start+maxButtons-3)...)
	case leftEllipsis && rightEllipsis:
		out := []Button{{Page: 1}, {Ellipsis: true}}
		start := current - half + 1
		out = append(out, pages(start, start+maxButtons-5)...)
		return append(out, Button{Ellipsis: true}, Button{Page: totalPages})
	default:
		return pages(1, totalPages)
	}
}

func pages(from, to int) []Button {
	out := make([]Button, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, Button{Page: p})
	}
	return out
}

// Window returns the [start, end) bounds of a page within n items.
func Window(n int, p Params) (int, int) {
	start := Offset(p.Page, p.PageSize)
	if start > n {
		start = n
	}
	end := start + p.PageSize
	if end > n {
		end = n
	}
	return start, end
}
