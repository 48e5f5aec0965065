package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int
		page  int
		limit int
		want  Pagination
	}{
		{
			name:  "exact multiple",
			total: 20,
			page:  1,
			limit: 10,
			want:  Pagination{Total: 20, Pages: 2, Page: 1, Limit: 10},
		},
		{
			name:  "partial last page",
			total: 21,
			page:  2,
			limit: 10,
			want:  Pagination{Total: 21, Pages: 3, Page: 2, Limit: 10},
		},
		{
			name:  "empty result set",
			total: 0,
			page:  1,
			limit: 10,
			want:  Pagination{Total: 0, Pages: 0, Page: 1, Limit: 10},
		},
		{
			name:  "defaults applied",
			total: 5,
			page:  0,
			limit: 0,
			want:  Pagination{Total: 5, Pages: 1, Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewPagination(tt.total, tt.page, tt.limit))
		})
	}
}
