package usecase_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"task-board/internal/model"
	"task-board/internal/task"
	"task-board/internal/task/repository"
	"task-board/internal/task/repository/memory"
	"task-board/internal/task/usecase"
	"task-board/pkg/datemath"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type failingRepo struct{}

var errStore = errors.New("store down")

func (failingRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errStore
}
func (failingRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, errStore
}
func (failingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, errStore
}
func (failingRepo) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) (bool, error) {
	return false, errStore
}
func (failingRepo) ReorderTasks(ctx context.Context, opt repository.ReorderTasksOptions) ([]model.Task, error) {
	return nil, errStore
}

// Wednesday, May 1, 2024, mid-morning in UTC.
var now = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

var sc = model.Scope{SessionID: "session-1"}

func newUseCase(t *testing.T) task.UseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	l := &mockLogger{}
	repo := memory.New(l, memory.Config{MaxSessions: 8, SessionTTL: time.Hour})
	return usecase.New(repo, l, parser, usecase.Options{Now: func() time.Time { return now }})
}

func listTexts(t *testing.T, uc task.UseCase, category string) []string {
	t.Helper()
	out, err := uc.List(context.Background(), sc, task.ListInput{Category: category})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	texts := make([]string, len(out.Tasks))
	for i, v := range out.Tasks {
		texts[i] = v.Task.Text
	}
	return texts
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		input     task.AddTaskInput
		wantAdded bool
		wantErr   error
		check     func(t *testing.T, got model.Task)
	}{
		{
			name:      "Defaults",
			input:     task.AddTaskInput{Text: "  write report  "},
			wantAdded: true,
			check: func(t *testing.T, got model.Task) {
				if got.Text != "write report" {
					t.Errorf("text not trimmed: %q", got.Text)
				}
				if got.Category != model.CategoryGeneral || got.Priority != model.PriorityMedium {
					t.Errorf("defaults not applied: %s/%s", got.Category, got.Priority)
				}
				if got.DueDate != nil {
					t.Errorf("expected no due date")
				}
				if got.ID != now.UnixMilli() {
					t.Errorf("expected timestamp id, got %d", got.ID)
				}
			},
		},
		{
			name:      "Explicit fields",
			input:     task.AddTaskInput{Text: "exam", Category: "study", Priority: "high", DueDate: "2024-05-10"},
			wantAdded: true,
			check: func(t *testing.T, got model.Task) {
				if got.Category != model.CategoryStudy || got.Priority != model.PriorityHigh {
					t.Errorf("unexpected %s/%s", got.Category, got.Priority)
				}
				want := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
				if got.DueDate == nil || !got.DueDate.Equal(want) {
					t.Errorf("unexpected due date %v", got.DueDate)
				}
			},
		},
		{
			name:      "Relative due date",
			input:     task.AddTaskInput{Text: "call", DueDate: "tomorrow"},
			wantAdded: true,
			check: func(t *testing.T, got model.Task) {
				want := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
				if got.DueDate == nil || !got.DueDate.Equal(want) {
					t.Errorf("unexpected due date %v", got.DueDate)
				}
			},
		},
		{name: "Empty description", input: task.AddTaskInput{Text: ""}},
		{name: "Whitespace description", input: task.AddTaskInput{Text: " \t\n "}},
		{name: "Blank text skips validation", input: task.AddTaskInput{Text: " ", Category: "bogus"}},
		{name: "Bad category", input: task.AddTaskInput{Text: "x", Category: "Chores"}, wantErr: task.ErrInvalidCategory},
		{name: "All is not a category", input: task.AddTaskInput{Text: "x", Category: "All"}, wantErr: task.ErrInvalidCategory},
		{name: "Bad priority", input: task.AddTaskInput{Text: "x", Priority: "Critical"}, wantErr: task.ErrInvalidPriority},
		{name: "Bad due date", input: task.AddTaskInput{Text: "x", DueDate: "someday"}, wantErr: task.ErrInvalidDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t)
			out, err := uc.Add(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}
			if out.Added != tt.wantAdded {
				t.Fatalf("Added = %v, want %v", out.Added, tt.wantAdded)
			}
			if tt.check != nil {
				tt.check(t, out.Task)
			}

			texts := listTexts(t, uc, "All")
			if tt.wantAdded && len(texts) != 1 {
				t.Errorf("expected one task on the board, got %v", texts)
			}
			if !tt.wantAdded && len(texts) != 0 {
				t.Errorf("board changed: %v", texts)
			}
		})
	}
}

func TestAddKeepsBoardSorted(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	for _, in := range []task.AddTaskInput{
		{Text: "low", Priority: "Low"},
		{Text: "high", Priority: "High"},
		{Text: "late", Priority: "High", DueDate: "2024-06-01"},
		{Text: "soon", Priority: "Low", DueDate: "2024-05-03"},
	} {
		if _, err := uc.Add(ctx, sc, in); err != nil {
			t.Fatalf("Add(%s): %v", in.Text, err)
		}
	}

	want := []string{"soon", "late", "high", "low"}
	if got := listTexts(t, uc, ""); !slices.Equal(got, want) {
		t.Errorf("board = %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	a, _ := uc.Add(ctx, sc, task.AddTaskInput{Text: "a", Priority: "High"})
	uc.Add(ctx, sc, task.AddTaskInput{Text: "b", Priority: "Low"})

	t.Run("Missing id is a no-op", func(t *testing.T) {
		out, err := uc.Delete(ctx, sc, 1)
		if err != nil || out.Deleted {
			t.Fatalf("expected no-op, got %+v, %v", out, err)
		}
		if got := listTexts(t, uc, ""); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("board changed: %v", got)
		}
	})

	t.Run("Existing id", func(t *testing.T) {
		out, err := uc.Delete(ctx, sc, a.Task.ID)
		if err != nil || !out.Deleted || out.ID != a.Task.ID {
			t.Fatalf("unexpected %+v, %v", out, err)
		}
		if got := listTexts(t, uc, ""); !slices.Equal(got, []string{"b"}) {
			t.Errorf("board = %v", got)
		}
	})
}

func TestReorder(t *testing.T) {
	ctx := context.Background()

	t.Run("Sort wins over manual placement", func(t *testing.T) {
		uc := newUseCase(t)
		uc.Add(ctx, sc, task.AddTaskInput{Text: "dated", Priority: "Low", DueDate: "2099-01-01"})
		uc.Add(ctx, sc, task.AddTaskInput{Text: "undated", Priority: "Low"})

		out, err := uc.Reorder(ctx, sc, task.ReorderInput{From: 1, To: 0})
		if err != nil {
			t.Fatalf("Reorder: %v", err)
		}
		if out.Tasks[0].Task.Text != "dated" {
			t.Errorf("dated task should be first, got %s", out.Tasks[0].Task.Text)
		}
	})

	t.Run("Equal tasks keep manual order", func(t *testing.T) {
		uc := newUseCase(t)
		for _, s := range []string{"one", "two", "three"} {
			uc.Add(ctx, sc, task.AddTaskInput{Text: s})
		}

		if _, err := uc.Reorder(ctx, sc, task.ReorderInput{From: 2, To: 0}); err != nil {
			t.Fatalf("Reorder: %v", err)
		}
		if got := listTexts(t, uc, ""); !slices.Equal(got, []string{"three", "one", "two"}) {
			t.Errorf("board = %v", got)
		}
	})

	t.Run("Filtered view indices", func(t *testing.T) {
		uc := newUseCase(t)
		uc.Add(ctx, sc, task.AddTaskInput{Text: "w1", Category: "Work"})
		uc.Add(ctx, sc, task.AddTaskInput{Text: "p1", Category: "Personal"})
		uc.Add(ctx, sc, task.AddTaskInput{Text: "w2", Category: "Work"})

		if _, err := uc.Reorder(ctx, sc, task.ReorderInput{From: 1, To: 0, Category: "Work"}); err != nil {
			t.Fatalf("Reorder: %v", err)
		}
		if got := listTexts(t, uc, "Work"); !slices.Equal(got, []string{"w2", "w1"}) {
			t.Errorf("work view = %v", got)
		}
		if got := listTexts(t, uc, "All"); !slices.Equal(got, []string{"w2", "w1", "p1"}) {
			t.Errorf("board = %v", got)
		}
	})

	t.Run("Out of range", func(t *testing.T) {
		uc := newUseCase(t)
		uc.Add(ctx, sc, task.AddTaskInput{Text: "only"})
		_, err := uc.Reorder(ctx, sc, task.ReorderInput{From: 0, To: 5})
		if !errors.Is(err, task.ErrInvalidIndex) {
			t.Errorf("expected ErrInvalidIndex, got %v", err)
		}
	})

	t.Run("Bad category", func(t *testing.T) {
		uc := newUseCase(t)
		_, err := uc.Reorder(ctx, sc, task.ReorderInput{Category: "Nope"})
		if !errors.Is(err, task.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})
}

func TestListDueStatus(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	for _, in := range []task.AddTaskInput{
		{Text: "yesterday", DueDate: "2024-04-30"},
		{Text: "today", DueDate: "2024-05-01"},
		{Text: "tomorrow", DueDate: "2024-05-02"},
		{Text: "five", DueDate: "2024-05-06"},
		{Text: "none"},
	} {
		if _, err := uc.Add(ctx, sc, in); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	out, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := map[string]string{
		"yesterday": "Overdue",
		"today":     "Due Today",
		"tomorrow":  "Due Tomorrow",
		"five":      "Due in 5 days",
		"none":      "",
	}
	for _, v := range out.Tasks {
		if got := v.DueStatus.String(); got != want[v.Task.Text] {
			t.Errorf("%s: due status %q, want %q", v.Task.Text, got, want[v.Task.Text])
		}
	}
	if out.Total != 5 || out.Category != model.CategoryAll {
		t.Errorf("unexpected total/category: %d %s", out.Total, out.Category)
	}
}

func TestListDueStatusInBoardTimezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// 20:00 UTC on May 1 is already 03:00 on May 2 in UTC+7.
	lateEvening := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	l := &mockLogger{}
	uc := usecase.New(memory.New(l, memory.Config{}), l, parser, usecase.Options{
		Now: func() time.Time { return lateEvening },
	})
	ctx := context.Background()

	uc.Add(ctx, sc, task.AddTaskInput{Text: "may 1", DueDate: "2024-05-01"})
	uc.Add(ctx, sc, task.AddTaskInput{Text: "may 2", DueDate: "2024-05-02"})

	out, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := map[string]task.DueKind{
		"may 1": task.DueOverdue,
		"may 2": task.DueToday,
	}
	for _, v := range out.Tasks {
		if v.DueStatus.Kind != want[v.Task.Text] {
			t.Errorf("%s: kind %v, want %v", v.Task.Text, v.DueStatus.Kind, want[v.Task.Text])
		}
	}
}

func TestListFilter(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()
	uc.Add(ctx, sc, task.AddTaskInput{Text: "w", Category: "Work"})
	uc.Add(ctx, sc, task.AddTaskInput{Text: "u", Category: "Urgent"})

	out, err := uc.List(ctx, sc, task.ListInput{Category: "Urgent"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 || out.Tasks[0].Task.Text != "u" || out.Total != 2 {
		t.Errorf("unexpected %+v", out)
	}

	if _, err := uc.List(ctx, sc, task.ListInput{Category: "Hobby"}); !errors.Is(err, task.ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestDetail(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()
	added, _ := uc.Add(ctx, sc, task.AddTaskInput{Text: "a", DueDate: "today"})

	out, err := uc.Detail(ctx, sc, added.Task.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if out.Task.Task.Text != "a" || out.Task.DueStatus.Kind != task.DueToday {
		t.Errorf("unexpected %+v", out)
	}

	if _, err := uc.Detail(ctx, sc, 99); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	uc := usecase.New(failingRepo{}, &mockLogger{}, parser, usecase.Options{})
	ctx := context.Background()

	if _, err := uc.Add(ctx, sc, task.AddTaskInput{Text: "x"}); !errors.Is(err, errStore) {
		t.Errorf("Add: expected errStore, got %v", err)
	}
	if _, err := uc.Delete(ctx, sc, 1); !errors.Is(err, errStore) {
		t.Errorf("Delete: expected errStore, got %v", err)
	}
	if _, err := uc.Reorder(ctx, sc, task.ReorderInput{}); !errors.Is(err, errStore) {
		t.Errorf("Reorder: expected errStore, got %v", err)
	}
	if _, err := uc.List(ctx, sc, task.ListInput{}); !errors.Is(err, errStore) {
		t.Errorf("List: expected errStore, got %v", err)
	}
	if _, err := uc.Detail(ctx, sc, 1); !errors.Is(err, errStore) {
		t.Errorf("Detail: expected errStore, got %v", err)
	}
}
