// Package middleware holds the gin middleware of the v1 API.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"scadaadmin/internal/core/apperror"
	"scadaadmin/pkg/logger"
)

// Recovery answers a handler panic with an internal error.
// The stack goes to the log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Error(c.Request.Context(), "handler panicked",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			if !c.Writer.Written() {
				writeError(c, apperror.NewInternal(fmt.Errorf("panic: %v", r)))
			}
		}()

		c.Next()
	}
}
