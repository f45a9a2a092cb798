// Package planner manages daily plans: one task list per calendar date,
// edited by hand or filled in by an external AI task generator.
//
// The generator is an injected dependency, constructed once at application
// start and passed in explicitly. The planner works fine without one; only
// Generate needs it.
package planner

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"dayora/internal/id"
	"dayora/internal/store"
)

// ErrNoGenerator is returned by Generate when no generator was injected.
var ErrNoGenerator = errors.New("no task generator configured")

// ErrEmptyInput is returned by Generate for blank raw input.
var ErrEmptyInput = errors.New("nothing to plan")

// GeneratedTask is one task proposed by the generator.
type GeneratedTask struct {
	Text          string
	Priority      store.TaskPriority
	EstimatedTime int
	Category      string
}

// GeneratedPlan is the generator's answer for one batch of raw input.
type GeneratedPlan struct {
	Summary string
	Tasks   []GeneratedTask
}

// Generator turns the user's raw task text and preferences into a
// structured plan. Implementations wrap an external AI service; the planner
// neither knows nor cares which one.
type Generator interface {
	GeneratePlan(ctx context.Context, rawTasks string, settings store.UserSettings) (*GeneratedPlan, error)
}

// Service owns daily-plan mutations on top of the store.
type Service struct {
	store *store.Store
	gen   Generator
	log   zerolog.Logger
}

// NewService builds a planner. gen may be nil when AI assistance is not
// configured.
func NewService(st *store.Store, gen Generator, log zerolog.Logger) *Service {
	return &Service{store: st, gen: gen, log: log}
}

// Today returns the current plan date key (YYYY-MM-DD, local time).
func Today() string {
	return time.Now().Format("2006-01-02")
}

// PlanFor returns the plan for a date.
func (s *Service) PlanFor(date string) (store.DailyPlan, bool) {
	return s.store.PlanByDate(date)
}

// AddTasks appends tasks to the date's plan, creating the plan on first
// use. Tasks with blank text are skipped; missing priorities default to
// medium. Returns the updated plan.
func (s *Service) AddTasks(date string, tasks []store.DailyTask) store.DailyPlan {
	now := time.Now().UnixMilli()
	plan, ok := s.store.PlanByDate(date)
	if !ok {
		plan = store.DailyPlan{
			ID:        id.NewPlanID(),
			Date:      date,
			CreatedAt: now,
		}
	}
	for _, t := range tasks {
		t.Text = strings.TrimSpace(t.Text)
		if t.Text == "" {
			continue
		}
		if t.ID == "" {
			t.ID = id.NewTaskID()
		}
		if t.Priority == "" {
			t.Priority = store.PriorityMedium
		}
		plan.Tasks = append(plan.Tasks, t)
	}
	plan.UpdatedAt = now
	s.store.UpsertPlan(plan)
	return plan
}

// ToggleTask flips a task's completed flag. Unknown date or task is a
// no-op.
func (s *Service) ToggleTask(date, taskID string) {
	plan, ok := s.store.PlanByDate(date)
	if !ok {
		return
	}
	for i := range plan.Tasks {
		if plan.Tasks[i].ID == taskID {
			plan.Tasks[i].Completed = !plan.Tasks[i].Completed
			plan.UpdatedAt = time.Now().UnixMilli()
			s.store.UpsertPlan(plan)
			return
		}
	}
}

// RemoveTask deletes a task from the date's plan.
func (s *Service) RemoveTask(date, taskID string) {
	plan, ok := s.store.PlanByDate(date)
	if !ok {
		return
	}
	for i := range plan.Tasks {
		if plan.Tasks[i].ID == taskID {
			plan.Tasks = append(plan.Tasks[:i], plan.Tasks[i+1:]...)
			plan.UpdatedAt = time.Now().UnixMilli()
			s.store.UpsertPlan(plan)
			return
		}
	}
}

// Generate asks the injected generator to turn raw task text into tasks and
// appends them to the date's plan. On generator failure the plan is left
// untouched and the error is returned to the caller; nothing else in the
// app depends on the outcome.
func (s *Service) Generate(ctx context.Context, date, rawTasks string) (store.DailyPlan, error) {
	if strings.TrimSpace(rawTasks) == "" {
		return store.DailyPlan{}, ErrEmptyInput
	}
	if s.gen == nil {
		return store.DailyPlan{}, ErrNoGenerator
	}

	gp, err := s.gen.GeneratePlan(ctx, rawTasks, s.store.Settings())
	if err != nil {
		s.log.Warn().Err(err).Msg("task generation failed")
		return store.DailyPlan{}, err
	}

	tasks := make([]store.DailyTask, 0, len(gp.Tasks))
	for _, t := range gp.Tasks {
		tasks = append(tasks, store.DailyTask{
			Text:          t.Text,
			Priority:      t.Priority,
			EstimatedTime: t.EstimatedTime,
			Category:      t.Category,
		})
	}
	plan := s.AddTasks(date, tasks)
	if gp.Summary != "" {
		plan.Summary = gp.Summary
		plan.UpdatedAt = time.Now().UnixMilli()
		s.store.UpsertPlan(plan)
	}
	return plan, nil
}
