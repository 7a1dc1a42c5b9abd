package memory

import (
	"slices"
	"sync"

	"task-board/internal/model"
	"task-board/internal/task"
)

// board is one session's ordered task list.
type board struct {
	mu     sync.Mutex
	tasks  []model.Task
	lastID int64
}

// nextID derives ids from the creation time in milliseconds, bumping past
// the previous id when two tasks share a millisecond.
func (b *board) nextID(millis int64) int64 {
	id := max(millis, b.lastID+1)
	b.lastID = id
	return id
}

func (b *board) add(t model.Task) model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()

	t.ID = b.nextID(t.CreatedAt.UnixMilli())
	b.tasks = task.Sort(append(b.tasks, t))
	return t
}

func (b *board) get(id int64) (model.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return model.Task{}, false
	}
	return b.tasks[i], true
}

func (b *board) list(category model.Category) ([]model.Task, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return task.Filter(b.tasks, category), len(b.tasks)
}

func (b *board) delete(id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.tasks = task.Sort(slices.Delete(b.tasks, i, i+1))
	return true
}

func (b *board) reorder(category model.Category, from, to int) ([]model.Task, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	moved, err := task.MoveInView(b.tasks, category, from, to)
	if err != nil {
		return nil, err
	}
	b.tasks = task.Sort(moved)
	return slices.Clone(b.tasks), nil
}

func (b *board) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tasks)
}

func (b *board) indexOf(id int64) int {
	return slices.IndexFunc(b.tasks, func(t model.Task) bool { return t.ID == id })
}
