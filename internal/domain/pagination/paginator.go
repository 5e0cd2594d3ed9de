// Package pagination slices an already-fetched, in-memory list into pages.
//
// It is a view over the data, not a server cursor: the caller owns the
// collection and the Paginator only remembers which page is showing. Page
// numbers are 1-based and SetPage does not clamp; an out-of-range page
// simply shows no items.
package pagination

// Paginator holds the current page of one view. It is not safe for
// concurrent use.
type Paginator struct {
	page int
}

// New returns a paginator on page 1.
func New() *Paginator {
	return &Paginator{page: 1}
}

// Page returns the current page number.
func (p *Paginator) Page() int {
	return p.page
}

// SetPage moves to page n as given, without bounds checks.
func (p *Paginator) SetPage(n int) {
	p.page = n
}

// GoTo moves to page n only when 1 <= n <= totalPages and reports whether it
// moved.
func (p *Paginator) GoTo(n, totalPages int) bool {
	if n < 1 || n > totalPages {
		return false
	}
	p.page = n
	return true
}

// View is the visible slice of a collection.
type View[T any] struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
	Items      []T
}

// HasPrev reports whether a previous page exists.
func (v View[T]) HasPrev() bool {
	return v.Page > 1 && v.TotalPages > 0
}

// HasNext reports whether a next page exists.
func (v View[T]) HasNext() bool {
	return v.Page >= 1 && v.Page < v.TotalPages
}

// TotalPages is ceil(n/pageSize), or 0 when there is nothing to page.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	pages := n / pageSize
	if n%pageSize != 0 {
		pages++
	}
	return pages
}

// Compute returns the items of page for source. The returned slice aliases
// source.
func Compute[T any](source []T, pageSize, page int) View[T] {
	v := View[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(source), pageSize),
		TotalItems: len(source),
		Items:      []T{},
	}
	if pageSize <= 0 || page < 1 {
		return v
	}

	// Compare page numbers before multiplying so huge pages cannot overflow.
	if page > v.TotalPages {
		return v
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(source)-start)
	v.Items = source[start:end]
	return v
}

// ComputeView is Compute at the paginator's current page.
func ComputeView[T any](p *Paginator, source []T, pageSize int) View[T] {
	return Compute(source, pageSize, p.Page())
}
