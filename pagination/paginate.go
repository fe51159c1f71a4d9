// Package pagination slices ordered sequences into pages using either offset
// (page/limit) or cursor (first/after/last/before) semantics.
//
// Both modes share one slicing primitive and emit the same Page shape, so a page
// can be stored in the pagination cache regardless of how it was requested.
// Cursors are absolute offsets into the sequence they were minted against: they
// stay meaningful only while that sequence keeps its length and order.
package pagination

const (
	// DefaultLimit is the offset-mode page size when Request.Limit is absent.
	DefaultLimit = 10
	// DefaultFirst is the page size used to estimate CurrentPage/TotalPages in cursor
	// mode when Request.First is absent.
	DefaultFirst = 10
)

// Edge is one item of a page together with the cursor of its absolute index.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// PageInfo describes where a page sits in the full sequence.
// In cursor mode CurrentPage and TotalPages are estimates for display only.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
	TotalCount      int     `json:"totalCount"`
	CurrentPage     int     `json:"currentPage"`
	TotalPages      int     `json:"totalPages"`
}

// Page is a bounded slice of a sequence plus its metadata.
type Page[T any] struct {
	Edges    []Edge[T] `json:"edges"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Nodes returns the items of the page in order.
func (p Page[T]) Nodes() []T {
	nodes := make([]T, len(p.Edges))
	for i, edge := range p.Edges {
		nodes[i] = edge.Node
	}
	return nodes
}

// Paginator holds the defaults applied to absent request fields.
type Paginator struct {
	DefaultLimit int
	DefaultFirst int
}

// NewPaginator returns a Paginator, replacing non-positive defaults with the
// package defaults.
func NewPaginator(defaultLimit, defaultFirst int) Paginator {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if defaultFirst <= 0 {
		defaultFirst = DefaultFirst
	}
	return Paginator{DefaultLimit: defaultLimit, DefaultFirst: defaultFirst}
}

var defaultPaginator = NewPaginator(DefaultLimit, DefaultFirst)

// Paginate slices items with the package defaults.
func Paginate[T any](items []T, req Request) (Page[T], error) {
	return Apply(defaultPaginator, items, req)
}

// Apply slices items according to req using the defaults of p. It always works on
// the sequence passed in; nothing is memoized.
func Apply[T any](p Paginator, items []T, req Request) (Page[T], error) {
	if err := req.Validate(); err != nil {
		return Page[T]{}, err
	}
	if req.Mode() == ModeCursor {
		return cursorPage(p, items, req), nil
	}
	return offsetPage(p, items, req), nil
}

func offsetPage[T any](p Paginator, items []T, req Request) Page[T] {
	limit := p.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	page := 1
	if req.Page != nil {
		page = *req.Page
	}

	count := len(items)
	totalPages := ceilDiv(count, limit)
	page = clamp(page, 1, max(totalPages, 1))

	start := (page - 1) * limit
	end := start + min(limit, count-start)
	result := window(items, start, end)
	result.PageInfo.HasNextPage = page < totalPages
	result.PageInfo.HasPreviousPage = page > 1
	result.PageInfo.CurrentPage = page
	result.PageInfo.TotalPages = totalPages
	return result
}

func cursorPage[T any](p Paginator, items []T, req Request) Page[T] {
	count := len(items)
	start, end := 0, count
	if req.After != nil {
		// Capped before the increment so a huge offset cannot wrap around.
		start = min(decodeOr(*req.After, -1), count) + 1
	}
	if req.Before != nil {
		end = decodeOr(*req.Before, count)
	}
	start = clamp(start, 0, count)
	end = clamp(end, start, count)

	if req.First != nil {
		end = start + min(*req.First, end-start)
	}
	if req.Last != nil {
		start = max(end-*req.Last, start)
	}

	size := p.DefaultFirst
	if req.First != nil && *req.First > 0 {
		size = *req.First
	}
	result := window(items, start, end)
	result.PageInfo.HasNextPage = end < count
	result.PageInfo.HasPreviousPage = start > 0
	result.PageInfo.CurrentPage = start/size + 1
	result.PageInfo.TotalPages = ceilDiv(count, size)
	return result
}

// window builds the edges for items[start:end] with cursors of absolute indexes.
func window[T any](items []T, start, end int) Page[T] {
	edges := make([]Edge[T], 0, max(end-start, 0))
	for i := start; i < end; i++ {
		edges = append(edges, Edge[T]{Node: items[i], Cursor: EncodeCursor(i)})
	}
	info := PageInfo{TotalCount: len(items)}
	if len(edges) > 0 {
		first, last := edges[0].Cursor, edges[len(edges)-1].Cursor
		info.StartCursor = &first
		info.EndCursor = &last
	}
	return Page[T]{Edges: edges, PageInfo: info}
}

func ceilDiv(n, d int) int {
	if d <= 0 {
		return 0
	}
	if n%d != 0 {
		return n/d + 1
	}
	return n / d
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
