package pagination

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestCursor_RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 42, 1 << 20, 1<<31 - 1} {
		got, err := DecodeCursor(EncodeCursor(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestCursor_Malformed(t *testing.T) {
	for _, token := range []string{"", "not base64!", EncodeCursor(-1), "YWJj" /* "abc" */} {
		_, err := DecodeCursor(token)
		assert.ErrorIs(t, err, ErrMalformedCursor, "token %q", token)
	}
	assert.Equal(t, 7, decodeOr("garbage", 7))
}

func TestPaginate_OffsetBoundaries(t *testing.T) {
	items := sequence(25)

	tests := []struct {
		name        string
		page        int
		wantPage    int
		wantNodes   []int
		wantNext    bool
		wantPrev    bool
		wantStartAt int
	}{
		{name: "first page", page: 1, wantPage: 1, wantNodes: sequence(10), wantNext: true, wantPrev: false},
		{name: "last partial page", page: 3, wantPage: 3, wantNodes: []int{20, 21, 22, 23, 24}, wantNext: false, wantPrev: true},
		{name: "page zero clamps to first", page: 0, wantPage: 1, wantNodes: sequence(10), wantNext: true, wantPrev: false},
		{name: "page past end clamps to last", page: 99, wantPage: 3, wantNodes: []int{20, 21, 22, 23, 24}, wantNext: false, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(items, Request{Page: Int(tt.page), Limit: Int(10)})
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantNodes, page.Nodes()); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantPage, page.PageInfo.CurrentPage)
			assert.Equal(t, 3, page.PageInfo.TotalPages)
			assert.Equal(t, 25, page.PageInfo.TotalCount)
			assert.Equal(t, tt.wantNext, page.PageInfo.HasNextPage)
			assert.Equal(t, tt.wantPrev, page.PageInfo.HasPreviousPage)
		})
	}
}

func TestPaginate_OffsetDefaultsAndCursors(t *testing.T) {
	page, err := Paginate(sequence(12), Request{Page: Int(2)})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 11}, page.Nodes())
	assert.Equal(t, EncodeCursor(10), page.Edges[0].Cursor, "offset mode edges carry absolute indexes")
	require.NotNil(t, page.PageInfo.StartCursor)
	require.NotNil(t, page.PageInfo.EndCursor)
	assert.Equal(t, EncodeCursor(10), *page.PageInfo.StartCursor)
	assert.Equal(t, EncodeCursor(11), *page.PageInfo.EndCursor)
}

func TestPaginate_OffsetEmptySequence(t *testing.T) {
	page, err := Paginate([]string{}, Request{Page: Int(4)})
	require.NoError(t, err)

	assert.Empty(t, page.Edges)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
	assert.Equal(t, 0, page.PageInfo.TotalPages)
	assert.False(t, page.PageInfo.HasNextPage)
	assert.False(t, page.PageInfo.HasPreviousPage)
	assert.Nil(t, page.PageInfo.StartCursor)
	assert.Nil(t, page.PageInfo.EndCursor)
}

func TestPaginate_CursorComposition(t *testing.T) {
	items := sequence(10)

	first, err := Paginate(items, Request{First: Int(5)})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, first.Nodes())
	assert.True(t, first.PageInfo.HasNextPage)
	assert.False(t, first.PageInfo.HasPreviousPage)
	require.NotNil(t, first.PageInfo.EndCursor)
	assert.Equal(t, EncodeCursor(4), *first.PageInfo.EndCursor)

	second, err := Paginate(items, Request{First: Int(5), After: first.PageInfo.EndCursor})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, second.Nodes())
	assert.False(t, second.PageInfo.HasNextPage)
	assert.True(t, second.PageInfo.HasPreviousPage)
	assert.Equal(t, 2, second.PageInfo.CurrentPage)
	assert.Equal(t, 2, second.PageInfo.TotalPages)
}

func TestPaginate_CursorWindows(t *testing.T) {
	items := sequence(10)

	tests := []struct {
		name     string
		req      Request
		want     []int
		wantNext bool
		wantPrev bool
	}{
		{
			name:     "last only",
			req:      Request{Last: Int(3)},
			want:     []int{7, 8, 9},
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "before and last",
			req:      Request{Before: String(EncodeCursor(5)), Last: Int(2)},
			want:     []int{3, 4},
			wantNext: true,
			wantPrev: true,
		},
		{
			name:     "after and before",
			req:      Request{After: String(EncodeCursor(2)), Before: String(EncodeCursor(6))},
			want:     []int{3, 4, 5},
			wantNext: true,
			wantPrev: true,
		},
		{
			name:     "first then last narrows from both ends",
			req:      Request{First: Int(6), Last: Int(2)},
			want:     []int{4, 5},
			wantNext: true,
			wantPrev: true,
		},
		{
			name:     "malformed after falls back to the start",
			req:      Request{After: String("%%%"), First: Int(3)},
			want:     []int{0, 1, 2},
			wantNext: true,
			wantPrev: false,
		},
		{
			name:     "malformed before falls back to the end",
			req:      Request{Before: String("???"), Last: Int(2)},
			want:     []int{8, 9},
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "after past the end is empty",
			req:      Request{After: String(EncodeCursor(40))},
			want:     []int{},
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "first zero is empty",
			req:      Request{First: Int(0)},
			want:     []int{},
			wantNext: true,
			wantPrev: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(items, tt.req)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, page.Nodes()); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantNext, page.PageInfo.HasNextPage)
			assert.Equal(t, tt.wantPrev, page.PageInfo.HasPreviousPage)
			assert.Equal(t, 10, page.PageInfo.TotalCount)
		})
	}
}

func TestPaginate_RejectsInvalidRequests(t *testing.T) {
	items := sequence(3)

	_, err := Paginate(items, Request{Page: Int(1), First: Int(2)})
	assert.ErrorIs(t, err, ErrConflictingModes)

	_, err = Paginate(items, Request{Limit: Int(0)})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = Paginate(items, Request{Limit: Int(-3)})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = Paginate(items, Request{First: Int(-1)})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPaginator_CustomDefaults(t *testing.T) {
	p := NewPaginator(4, 3)

	page, err := Apply(p, sequence(10), Request{})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, page.Nodes())
	assert.Equal(t, 3, page.PageInfo.TotalPages)

	page, err = Apply(p, sequence(10), Request{After: String(EncodeCursor(5))})
	require.NoError(t, err)
	assert.Len(t, page.Edges, 4)
	assert.Equal(t, 3, page.PageInfo.CurrentPage, "estimated from the default first")
	assert.Equal(t, 4, page.PageInfo.TotalPages)

	assert.Equal(t, Paginator{DefaultLimit: DefaultLimit, DefaultFirst: DefaultFirst}, NewPaginator(0, -1))
}

func TestRequest_Mode(t *testing.T) {
	assert.Equal(t, ModeOffset, Request{}.Mode())
	assert.Equal(t, ModeOffset, Request{Page: Int(2)}.Mode())
	assert.Equal(t, ModeCursor, Request{Before: String("x")}.Mode())
	assert.Equal(t, "cursor", ModeCursor.String())
}

func TestPaginate_HugeArguments(t *testing.T) {
	items := sequence(10)

	tests := []struct {
		name     string
		req      Request
		want     []int
		wantNext bool
		wantPrev bool
	}{
		{
			name:     "max first after a cursor",
			req:      Request{After: String(EncodeCursor(4)), First: Int(math.MaxInt)},
			want:     []int{5, 6, 7, 8, 9},
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "max first from the start",
			req:      Request{First: Int(math.MaxInt)},
			want:     sequence(10),
			wantNext: false,
			wantPrev: false,
		},
		{
			name:     "max after is empty",
			req:      Request{After: String(EncodeCursor(math.MaxInt)), First: Int(3)},
			want:     []int{},
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "max last",
			req:      Request{Last: Int(math.MaxInt)},
			want:     sequence(10),
			wantNext: false,
			wantPrev: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Paginate(items, tt.req)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, page.Nodes()); diff != "" {
				t.Errorf("nodes mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.wantNext, page.PageInfo.HasNextPage)
			assert.Equal(t, tt.wantPrev, page.PageInfo.HasPreviousPage)
		})
	}

	page, err := Paginate(sequence(25), Request{Limit: Int(math.MaxInt)})
	require.NoError(t, err)
	assert.Len(t, page.Edges, 25)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
	assert.False(t, page.PageInfo.HasNextPage)

	page, err = Paginate(sequence(25), Request{Page: Int(math.MaxInt), Limit: Int(math.MaxInt)})
	require.NoError(t, err)
	assert.Len(t, page.Edges, 25)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)

	page, err = Paginate(sequence(25), Request{First: Int(math.MaxInt)})
	require.NoError(t, err)
	assert.Equal(t, 1, page.PageInfo.TotalPages)
	assert.Equal(t, 1, page.PageInfo.CurrentPage)
}
