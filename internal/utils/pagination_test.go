package utils

import (
	"math"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/project-todo/internal/constants"
)

func paramsFor(query string) PaginationParams {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/projects/Home/tasks?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	p := paramsFor("")
	assert.Equal(t, PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}, p)

	p = paramsFor("page=3&limit=10")
	assert.Equal(t, PaginationParams{Page: 3, Limit: 10, Offset: 20}, p)

	p = paramsFor("page=-2&limit=1000")
	assert.Equal(t, PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}, p)

	p = paramsFor("page=x&limit=y")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, constants.DefaultPageSize, p.Limit)
}

func TestGetPaginationParams_HugePage(t *testing.T) {
	p := paramsFor("page=" + strconv.Itoa(math.MaxInt) + "&limit=100")
	assert.Equal(t, math.MaxInt, p.Page)
	assert.Equal(t, math.MaxInt, p.Offset)
}

func TestNewPaginationParams_OffsetSaturates(t *testing.T) {
	p := NewPaginationParams(math.MaxInt, constants.MaxPageSize)
	assert.Equal(t, math.MaxInt, p.Offset)

	p = NewPaginationParams(math.MaxInt/2, 2)
	assert.Equal(t, math.MaxInt, p.Offset)

	p = NewPaginationParams(2, constants.MaxPageSize)
	assert.Equal(t, constants.MaxPageSize, p.Offset)
}

func TestPaginationParams_Bounds(t *testing.T) {
	cases := []struct {
		params     PaginationParams
		total      int
		start, end int
	}{
		{NewPaginationParams(1, 2), 5, 0, 2},
		{NewPaginationParams(3, 2), 5, 4, 5},
		{NewPaginationParams(9, 2), 5, 5, 5},
		{NewPaginationParams(1, 20), 0, 0, 0},
		{NewPaginationParams(math.MaxInt, 100), 5, 5, 5},
	}

	for _, tc := range cases {
		start, end := tc.params.Bounds(tc.total)
		assert.Equal(t, tc.start, start, "%+v", tc.params)
		assert.Equal(t, tc.end, end, "%+v", tc.params)
	}
}
