package http

import (
	"github.com/gin-gonic/gin"

	"task-board/internal/middleware"
	"task-board/pkg/response"
)

// Add godoc
// @Summary     Add a task
// @Description Adds a task to the session board. A blank text is ignored and reported with added=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session board id (issued when absent)"
// @Param       body body addReq true "Task data"
// @Success     200  {object} addResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Add", err)
		return
	}

	response.OK(c, h.newAddResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns the session board in canonical order, optionally filtered by category.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session board id"
// @Param       category query string false "All, General, Work, Personal, Study or Urgent"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session board id"
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.respondError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes a task by ID. Deleting an unknown ID succeeds with deleted=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session board id"
// @Param       id path int true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.respondError(c, "uc.Delete", err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}

// Reorder godoc
// @Summary     Reorder tasks
// @Description Moves the task at view position "from" to "to", then re-sorts the board.
// @Description Indices address the view selected by "category" (All when empty).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Session board id"
// @Param       body body reorderReq true "Move"
// @Success     200 {object} reorderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/reorder [POST]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Reorder(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Reorder", err)
		return
	}

	response.OK(c, h.newReorderResp(output))
}

// Meta godoc
// @Summary     Board vocabulary
// @Description Lists categories, filter choices and priorities with their badge colours.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} metaResp
// @Router      /api/v1/tasks/meta [GET]
func (h *handler) Meta(c *gin.Context) {
	response.OK(c, h.newMetaResp())
}
