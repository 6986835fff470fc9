package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit, total int
		wantPages          int
	}{
		{1, 50, 0, 0},
		{1, 50, 1, 1},
		{1, 50, 50, 1},
		{1, 50, 51, 2},
		{3, 10, 95, 10},
		{1, 0, 10, 0},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit, tt.total)
		assert.Equal(t, tt.wantPages, p.TotalPages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.page, p.Page)
		assert.Equal(t, tt.limit, p.Limit)
		assert.Equal(t, tt.total, p.Total)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, 50},
		{"explicit", "3", "20", 3, 20},
		{"garbage", "abc", "x", 1, 50},
		{"non positive", "0", "-5", 1, 50},
		{"capped", "2", "1000", 2, MaxLimit},
		{"page capped", "5000000", "100", MaxPage, MaxLimit},
		{"page beyond int range", "9223372036854775808", "10", MaxPage, 10},
		{"max int page", "9223372036854775807", "100", MaxPage, MaxLimit},
		{"limit beyond int range", "1", "99999999999999999999", 1, MaxLimit},
		{"negative beyond int range", "-9223372036854775809", "", 1, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ParsePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 50))
	assert.Equal(t, 100, Offset(3, 50))
	assert.Equal(t, 0, Offset(0, 50))
	assert.Equal(t, 0, Offset(2, 0))
	assert.Equal(t, (MaxPage-1)*MaxLimit, Offset(math.MaxInt, math.MaxInt))

	page, limit := ParsePage("9223372036854775807", "100")
	offset := Offset(page, limit)
	assert.Positive(t, offset)
	assert.Equal(t, (MaxPage-1)*MaxLimit, offset)
}
