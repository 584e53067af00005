package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePagination разбирает limit/offset. В отличие от мягкого усечения,
// значения вне диапазона отклоняются: границы — часть контракта валидации.
func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit = 10
	offset = 0
	if lStr := c.Query("limit"); lStr != "" {
		l, convErr := strconv.Atoi(lStr)
		if convErr != nil || l < 1 || l > 100 {
			return 0, 0, fmt.Errorf("limit must be an integer between 1 and 100")
		}
		limit = l
	}
	if oStr := c.Query("offset"); oStr != "" {
		o, convErr := strconv.Atoi(oStr)
		if convErr != nil || o < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
		offset = o
	}
	return limit, offset, nil
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return uint(id), nil
}
