package views

// Paginator walks a flat occurrence list one page at a time. The cursor is
// an absolute index into the list; the visible page is derived from it, so
// cursor and page can never disagree.
type Paginator struct {
	pageSize int
	cursor   int
	total    int
}

// NewPaginator creates a paginator over an empty list
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetTotal sets the number of occurrences, clamping the cursor if the
// list shrank under it
func (p *Paginator) SetTotal(total int) {
	p.total = total
	if p.cursor >= total {
		p.cursor = total - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Reset returns to an empty list with the cursor at the top
func (p *Paginator) Reset() {
	p.cursor = 0
	p.total = 0
}

// Cursor returns the absolute index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves to the previous occurrence, crossing page boundaries
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// CursorDown moves to the next occurrence, crossing page boundaries
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	return true
}

// VisibleRange returns the half-open occurrence range of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageStart()
	end = min(start+p.pageSize, p.total)
	return
}

// CurrentPage returns the 1-based page the cursor sits on
func (p *Paginator) CurrentPage() int {
	return p.cursor/p.pageSize + 1
}

// TotalPages returns the page count; an empty list still has one page
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 1
	}
	return (p.total + p.pageSize - 1) / p.pageSize
}

// NextPage jumps the cursor to the top of the next page
func (p *Paginator) NextPage() bool {
	next := p.pageStart() + p.pageSize
	if next >= p.total {
		return false
	}
	p.cursor = next
	return true
}

// PrevPage jumps the cursor to the top of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pageStart() == 0 {
		return false
	}
	p.cursor = p.pageStart() - p.pageSize
	return true
}

func (p *Paginator) pageStart() int {
	return (p.cursor / p.pageSize) * p.pageSize
}
