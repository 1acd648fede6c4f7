package job

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhubaibShabbir4/Job-Finder-App/internal/store"
	"github.com/KhubaibShabbir4/Job-Finder-App/internal/utilities"
)

// translateStoreError maps a store error kind to its HTTP status and message.
// Validation failures carry their comma-joined rule violations, unknown ids map
// to a fixed message, and anything else surfaces the underlying failure text.
func translateStoreError(err error) (int, string) {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, store.ErrJobNotFound):
		return http.StatusNotFound, "Job not found"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func writeStoreError(c *gin.Context, err error) {
	status, msg := translateStoreError(err)
	c.JSON(status, utilities.ErrorResponse{Error: msg})
}
