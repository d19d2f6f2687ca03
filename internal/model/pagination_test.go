package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateMiddlePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, p := Paginate(items, 2, 3, 10)
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, Pagination{Page: 2, PageSize: 3, Total: 7, TotalPages: 3}, p)
}

func TestPaginatePastTheEnd(t *testing.T) {
	items := []int{1, 2, 3}

	page, p := Paginate(items, 5, 2, 10)
	assert.Empty(t, page)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.TotalPages)
}

func TestPaginateDefaults(t *testing.T) {
	items := make([]int, 25)

	page, p := Paginate(items, 0, 0, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 3, p.TotalPages)
}

func TestPaginateEmpty(t *testing.T) {
	page, p := Paginate([]string{}, 1, 10, 10)
	assert.Empty(t, page)
	assert.Zero(t, p.Total)
	assert.Zero(t, p.TotalPages)
}

func TestPaginateReturnsCopy(t *testing.T) {
	items := []string{"a", "b", "c"}
	page, _ := Paginate(items, 1, 3, 10)
	page[0] = "z"
	assert.Equal(t, "a", items[0])
}
