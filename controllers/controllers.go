package controllers

import (
	"errors"
	"strconv"

	"github.com/sohamaimain-boop/Pure-Element/pkg/apperr"
	"github.com/sohamaimain-boop/Pure-Element/pkg/resp"

	"github.com/gin-gonic/gin"
)

// fail maps service errors to HTTP responses; anything outside the taxonomy
// is an opaque 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput), errors.Is(err, apperr.ErrInsufficientStock):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		resp.Conflict(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}
