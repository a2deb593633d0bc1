package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID reads a decimal id path parameter, answering 400 itself when the
// value is not one.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid_request",
			"detail": fmt.Sprintf("%s must be a decimal id", name),
		})
		return 0, false
	}
	return uint(id), true
}
