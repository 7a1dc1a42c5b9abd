package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-board/internal/task"
	"task-board/internal/task/repository"
	pkgErrors "task-board/pkg/errors"
	"task-board/pkg/response"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrInvalidCategory),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDueDate),
		errors.Is(err, task.ErrInvalidIndex):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrSessionRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// respondError is the single place a failed use-case call is logged:
// Warn for caller mistakes, Error for everything else.
func (h *handler) respondError(c *gin.Context, method string, err error) {
	ctx := c.Request.Context()
	mapped := h.mapError(err)

	var httpErr *pkgErrors.HTTPError
	if errors.As(mapped, &httpErr) && httpErr.StatusCode() < http.StatusInternalServerError {
		h.l.Warnf(ctx, "%s: %v", method, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", method, err)
	}

	response.Error(c, mapped)
}
