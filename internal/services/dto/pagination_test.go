package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 20, 0)
	assert.EqualValues(t, 0, p.TotalPages)

	p = NewPagination(1, 20, 20)
	assert.EqualValues(t, 1, p.TotalPages)

	p = NewPagination(2, 20, 21)
	assert.EqualValues(t, 2, p.TotalPages)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.Limit)

	// Zero limit must not divide by zero.
	p = NewPagination(1, 0, 50)
	assert.EqualValues(t, 0, p.TotalPages)
}
