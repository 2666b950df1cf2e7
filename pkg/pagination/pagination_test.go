package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageTotalPages(t *testing.T) {
	cases := []struct {
		name       string
		totalCount int64
		limit      int
		expected   int
	}{
		{"no rows yields zero pages", 0, 10, 0},
		{"single row single page", 1, 10, 1},
		{"partial last page rounds up", 21, 10, 3},
		{"exact multiple", 20, 10, 2},
		{"no rows with tiny limit", 0, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page := NewPage([]string{}, tc.totalCount, 1, tc.limit)
			assert.Equal(t, tc.expected, page.TotalPages)
			assert.Equal(t, tc.totalCount, page.TotalCount)
			assert.Equal(t, 1, page.CurrentPage)
		})
	}
}
