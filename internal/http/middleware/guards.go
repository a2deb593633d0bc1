package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// The guards compose left to right; the first failure short-circuits the
// chain with a plain-text status and message.

func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.String(http.StatusUnauthorized, "You must be logged in")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SelfOnly permits the request only when the :userId path parameter names
// the caller themselves.
func SelfOnly(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		targetID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
		if identity == nil || err != nil || uint(targetID) != identity.UserID {
			c.String(http.StatusForbidden, fmt.Sprintf("You can only %s yourself.", action))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Forbidden hard-blocks a route with the given message.
func Forbidden(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusForbidden, message)
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		if identity == nil || !identity.IsAdmin {
			c.String(http.StatusUnauthorized, "You must be an admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
