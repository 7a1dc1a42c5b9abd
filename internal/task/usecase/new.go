package usecase

import (
	"time"

	"task-board/internal/model"
	"task-board/internal/task"
	"task-board/internal/task/repository"
	"task-board/pkg/datemath"
	"task-board/pkg/log"
)

// Options holds the board defaults applied by Add.
type Options struct {
	DefaultCategory model.Category
	DefaultPriority model.Priority
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	dates  *datemath.Parser
	now    func() time.Time
	defCat model.Category
	defPri model.Priority
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger, dates *datemath.Parser, opt Options) *implUseCase {
	uc := &implUseCase{
		repo:   repo,
		l:      l,
		dates:  dates,
		now:    opt.Now,
		defCat: opt.DefaultCategory,
		defPri: opt.DefaultPriority,
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if !uc.defCat.IsValid() {
		uc.defCat = model.CategoryGeneral
	}
	if !uc.defPri.IsValid() {
		uc.defPri = model.PriorityMedium
	}
	return uc
}
