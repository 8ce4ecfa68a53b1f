package kernel

// PaginationOptions carries the page window requested by a caller.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the options into a usable window. The page number itself
// is never clamped downward beyond 1: requesting a page past the end of the
// collection is legal and yields an empty data slice.
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the number of rows to skip for this window.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes the position of a result window within the full collection.
// Number echoes the requested page without server-side clamping.
type Page struct {
	Number int `json:"currentPage"`
	Size   int `json:"pageSize"`
	Total  int `json:"totalCount"`
	Pages  int `json:"totalPages"`
}

// NewPage computes totalPages as ceil(total/size).
func NewPage(opts PaginationOptions, total int) Page {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return Page{
		Number: opts.Page,
		Size:   opts.PageSize,
		Total:  total,
		Pages:  pages,
	}
}

// Paginated wraps one page of results together with its position.
type Paginated[T any] struct {
	Items []T `json:"data"`
	Page
	Empty bool `json:"empty"`
}

// NewPaginated builds a response page from items and the total count.
func NewPaginated[T any](items []T, opts PaginationOptions, total int) *Paginated[T] {
	return &Paginated[T]{
		Items: items,
		Page:  NewPage(opts, total),
		Empty: len(items) == 0,
	}
}
