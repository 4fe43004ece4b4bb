package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, Filter{}.Offset())
	assert.Equal(t, 0, Filter{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Filter{Page: 3, PageSize: 20}.Offset())
	assert.True(t, Filter{Page: 1}.Unpaged())
	assert.False(t, Filter{Page: 1, PageSize: 10}.Unpaged())
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2}, 21, 3, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(21), p.Total)

	unpaged := NewPaginated([]int{1, 2}, 2, 1, 0)
	assert.Equal(t, 1, unpaged.TotalPages)
}
