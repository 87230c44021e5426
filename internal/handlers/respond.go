package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Witcher21/GNS-POS/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every boundary operation answers with the same tagged envelope the UI
// already speaks: {"success": true, "data": ...} or
// {"success": false, "error": "..."}. The success tag is authoritative.

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
}

// bindMessage turns gin binding failures into per-field messages instead of
// validator's struct-path dump.
func bindMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		parts := make([]string, 0, len(ve))
		for _, fe := range ve {
			parts = append(parts, strings.ToLower(fe.Field())+" "+fe.Tag())
		}
		return strings.Join(parts, ", ")
	}
	return err.Error()
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
