package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/hireview/hireview-backend/internal/apperr"
)

// respondError translates any error into the structured payload
// { "error": { kind, message, violations? } }. Unknown errors become a
// generic internal failure so implementation detail never leaks to clients.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Wrap(apperr.KindInternal, "something went wrong", err)
	}

	body := gin.H{
		"kind":    ae.Kind,
		"message": ae.Message,
	}
	if len(ae.Violations) > 0 {
		body["violations"] = ae.Violations
	}
	c.JSON(ae.Kind.Status(), gin.H{"error": body})
}
