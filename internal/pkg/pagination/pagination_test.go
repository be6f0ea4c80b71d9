package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"negative page", -3, 20, 1, 20, 0},
		{"over max limit", 2, 500, 2, MaxLimit, MaxLimit},
		{"normal", 3, 10, 3, 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
			assert.Equal(t, tt.wantOffset, params.Offset)
		})
	}
}

func TestGetMeta(t *testing.T) {
	params := Normalize(2, 10)
	meta := GetMeta(params, 25)

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	last := GetMeta(Normalize(3, 10), 25)
	assert.False(t, last.HasNext)
}

func TestNewResponse(t *testing.T) {
	params := Normalize(1, 10)
	resp := NewResponse([]string{"a", "b"}, params, 2)

	assert.Equal(t, []string{"a", "b"}, resp.Data)
	assert.Equal(t, 1, resp.Meta.TotalPages)
	assert.False(t, resp.Meta.HasNext)
}
