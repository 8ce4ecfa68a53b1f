package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaultsAndCaps(t *testing.T) {
	opts := PaginationOptions{Page: 0, PageSize: 0}.Normalize()
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, DefaultPageSize, opts.PageSize)

	opts = PaginationOptions{Page: 3, PageSize: 500}.Normalize()
	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, MaxPageSize, opts.PageSize)
}

func TestNormalizeKeepsPagePastEnd(t *testing.T) {
	// Requesting a window beyond the data is legal; it just comes back empty.
	opts := PaginationOptions{Page: 40, PageSize: 10}.Normalize()
	assert.Equal(t, 40, opts.Page)
	assert.Equal(t, 390, opts.Offset())
}

func TestNewPageComputesCeilOfTotal(t *testing.T) {
	page := NewPage(PaginationOptions{Page: 1, PageSize: 10}, 25)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 25, page.Total)

	page = NewPage(PaginationOptions{Page: 1, PageSize: 10}, 30)
	assert.Equal(t, 3, page.Pages)

	page = NewPage(PaginationOptions{Page: 1, PageSize: 10}, 0)
	assert.Equal(t, 0, page.Pages)
}

func TestNewPaginatedEchoesRequestedPage(t *testing.T) {
	// Page 4 of a 25-item collection: empty data, truthful position.
	p := NewPaginated([]string{}, PaginationOptions{Page: 4, PageSize: 10}, 25)
	assert.Equal(t, 4, p.Number)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 25, p.Total)
	assert.True(t, p.Empty)
	assert.Empty(t, p.Items)
}

func TestNewPaginatedWithItems(t *testing.T) {
	p := NewPaginated([]int{1, 2, 3}, PaginationOptions{Page: 1, PageSize: 10}, 3)
	assert.False(t, p.Empty)
	assert.Len(t, p.Items, 3)
	assert.Equal(t, 1, p.Pages)
}
