package middleware

import (
	"github.com/gin-gonic/gin"

	"scadaadmin/internal/core/apperror"
	appctx "scadaadmin/internal/core/context"
	"scadaadmin/internal/infrastructure/http/v1/dto"
	"scadaadmin/pkg/logger"
)

// ErrorHandler renders the last error recorded on the gin context.
// Causes are logged; clients see only the code, message and details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		if appErr.Err != nil {
			logger.Error(c.Request.Context(), "request failed",
				"code", appErr.Code,
				"path", c.FullPath(),
				"cause", appErr.Err,
			)
		}
		writeError(c, appErr)
	}
}

// writeError renders appErr with the request id added to its details.
func writeError(c *gin.Context, appErr *apperror.AppError) {
	details := make(map[string]any, len(appErr.Details)+1)
	for k, v := range appErr.Details {
		details[k] = v
	}
	if id := appctx.GetRequestID(c.Request.Context()); id != "" {
		details["request_id"] = id
	}

	c.AbortWithStatusJSON(appErr.Status(), dto.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: details,
	})
}
