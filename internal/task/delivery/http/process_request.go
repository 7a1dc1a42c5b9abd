package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processAddReq binds the add task request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processAddReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processReorderReq binds the reorder body; both indices are required.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "processReorderReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}

// processIDParam parses the :id path parameter. Any integer is accepted;
// ids that match no task are handled by the use case.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
