package http

import (
	"task-board/internal/model"
	"task-board/internal/task"
	"task-board/pkg/response"
)

// --- Request DTOs ---

type addReq struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

func (r addReq) toInput() task.AddTaskInput {
	return task.AddTaskInput{
		Text:     r.Text,
		Category: r.Category,
		Priority: r.Priority,
		DueDate:  r.DueDate,
	}
}

type listReq struct {
	Category string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Category: r.Category}
}

type reorderReq struct {
	From     *int   `json:"from"     binding:"required"`
	To       *int   `json:"to"       binding:"required"`
	Category string `json:"category"`
}

func (r reorderReq) toInput() task.ReorderInput {
	return task.ReorderInput{
		From:     *r.From,
		To:       *r.To,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID            int64             `json:"id"`
	Text          string            `json:"text"`
	Category      string            `json:"category"`
	Priority      string            `json:"priority"`
	PriorityColor string            `json:"priority_color"`
	DueDate       *response.Date    `json:"due_date"`
	DueStatus     string            `json:"due_status"`
	DueKind       string            `json:"due_kind"`
	Overdue       bool              `json:"overdue"`
	CreatedAt     response.DateTime `json:"created_at"`
}

func newTaskResp(v task.TaskView) taskResp {
	return taskResp{
		ID:            v.Task.ID,
		Text:          v.Task.Text,
		Category:      v.Task.Category.String(),
		Priority:      v.Task.Priority.String(),
		PriorityColor: v.Task.Priority.Color(),
		DueDate:       response.NewDate(v.Task.DueDate),
		DueStatus:     v.DueStatus.String(),
		DueKind:       v.DueStatus.Kind.String(),
		Overdue:       v.DueStatus.IsOverdue(),
		CreatedAt:     response.DateTime(v.Task.CreatedAt),
	}
}

func newTaskResps(views []task.TaskView) []taskResp {
	out := make([]taskResp, len(views))
	for i, v := range views {
		out[i] = newTaskResp(v)
	}
	return out
}

type addResp struct {
	Added bool      `json:"added"`
	Task  *taskResp `json:"task,omitempty"`
}

func (h *handler) newAddResp(out task.AddTaskOutput) addResp {
	if !out.Added {
		return addResp{}
	}
	resp := newTaskResp(task.TaskView{Task: out.Task, DueStatus: out.DueStatus})
	return addResp{Added: true, Task: &resp}
}

type listResp struct {
	Tasks    []taskResp `json:"tasks"`
	Category string     `json:"category"`
	Count    int        `json:"count"`
	Total    int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks:    newTaskResps(out.Tasks),
		Category: out.Category.String(),
		Count:    len(out.Tasks),
		Total:    out.Total,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type deleteResp struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

func (h *handler) newDeleteResp(out task.DeleteTaskOutput) deleteResp {
	return deleteResp{ID: out.ID, Deleted: out.Deleted}
}

type reorderResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newReorderResp(out task.ReorderOutput) reorderResp {
	return reorderResp{Tasks: newTaskResps(out.Tasks)}
}

type priorityResp struct {
	Name  string `json:"name"`
	Rank  int    `json:"rank"`
	Color string `json:"color"`
}

type metaResp struct {
	Categories []string       `json:"categories"`
	Filters    []string       `json:"filters"`
	Priorities []priorityResp `json:"priorities"`
}

func (h *handler) newMetaResp() metaResp {
	resp := metaResp{}
	for _, c := range model.Categories {
		resp.Categories = append(resp.Categories, c.String())
	}
	for _, c := range model.FilterCategories {
		resp.Filters = append(resp.Filters, c.String())
	}
	for _, p := range model.Priorities {
		resp.Priorities = append(resp.Priorities, priorityResp{Name: p.String(), Rank: p.Rank(), Color: p.Color()})
	}
	return resp
}
