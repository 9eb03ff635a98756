package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/constants"
	"github.com/stretchr/testify/require"
)

func paramsForQuery(t *testing.T, query string) PaginationParams {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)

	return GetPaginationParams(c)
}

func TestGetPaginationParams_Defaults(t *testing.T) {
	params := paramsForQuery(t, "")
	require.Equal(t, 0, params.Offset)
	require.Equal(t, constants.DefaultPageSize, params.Limit)
}

func TestGetPaginationParams_LimitZeroMeansDefault(t *testing.T) {
	params := paramsForQuery(t, "limit=0")
	require.Equal(t, constants.DefaultPageSize, params.Limit)
}

func TestGetPaginationParams_OutOfRange(t *testing.T) {
	params := paramsForQuery(t, "offset=-5&limit=1000")
	require.Equal(t, 0, params.Offset)
	require.Equal(t, constants.DefaultPageSize, params.Limit)
}

func TestGetPaginationParams_Explicit(t *testing.T) {
	params := paramsForQuery(t, "offset=50&limit=10")
	require.Equal(t, 50, params.Offset)
	require.Equal(t, 10, params.Limit)
}
