package handlers

import (
	"net/http"
	"strings"

	apperrors "karttem-admin/internal/errors"

	"github.com/gin-gonic/gin"
)

// bindError reports a request body gin could not decode.
func bindError(c *gin.Context, err error) {
	_ = c.Error(invalidBody(err))
}

func invalidBody(err error) *apperrors.AppError {
	return apperrors.NewAppError(
		"invalid request body: "+err.Error(),
		apperrors.MsgInvalidParameters,
		apperrors.ErrCodeInvalidParameters,
		http.StatusBadRequest,
		err,
	)
}

// formBool reads an HTML checkbox style value.
func formBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes", "si", "sí":
		return true
	}
	return false
}

// listBaseURL is the path pagination links are built on.
func listBaseURL(c *gin.Context) string {
	return c.Request.URL.Path
}
