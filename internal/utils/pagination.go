package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mizuki-dev/kanban-api/internal/constants"
)

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Offset int
	Limit  int
}

// GetPaginationParams extracts and validates offset/limit from the request.
// limit=0 (or any out-of-range value) means "use the default page size",
// not "return zero rows".
func GetPaginationParams(c *gin.Context) PaginationParams {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return PaginationParams{
		Offset: offset,
		Limit:  limit,
	}
}
