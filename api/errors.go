package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform error body. Every non-200 response in this
// package goes through here or internalError.
func fail(c *gin.Context, status int, message, code string) {
	c.JSON(status, gin.H{"error": message, "code": code})
}

// internalError surfaces the underlying message so failures are
// diagnosable from the client side, matching the rest of the surface.
func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error: " + err.Error()})
}
