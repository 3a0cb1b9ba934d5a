package store

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/platform/clock"
)

// DueDateLayout is the accepted format for due date inputs: ISO-8601
// calendar dates ("2006-01-02"). Anything else degrades to "no due
// date" rather than erroring.
const DueDateLayout = time.DateOnly

// Completion outcome messages. These are part of the store's contract
// and asserted on by callers.
const (
	msgTaskNotFound   = "Task not found"
	msgMarkedComplete = "Task marked as complete"
	msgNextOccurrence = "Task completed. Next occurrence: %s"
)

// Result is the structured outcome of a completion attempt.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Store owns an ordered collection of tasks and the identifier counter.
// Identifiers start at 1 and increase strictly in creation order; each
// Store instance has an independent sequence. Tasks are never removed.
//
// The mutex makes the store safe to share across goroutines, though the
// intended use is a single writer.
type Store struct {
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	nextID int64
	tasks  []domain.Task
}

// New creates an empty Store. A nil clk falls back to the system clock;
// a nil logger discards log output.
func New(clk clock.Clock, logger *slog.Logger) *Store {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{clock: clk, logger: logger}
}

// CreateRegular creates a regular task and returns its identifier.
// The description may be empty. The due date is parsed per
// DueDateLayout; an empty or unparseable string leaves the task without
// a due date. There is no failure path.
func (s *Store) CreateRegular(title, description, dueDate string) int64 {
	var due *time.Time
	if dueDate != "" {
		parsed, err := time.Parse(DueDateLayout, dueDate)
		if err != nil {
			s.logger.Warn("ignoring unparseable due date",
				"due_date", dueDate,
				"error", err)
		} else {
			due = &parsed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := domain.NewRegular(s.nextID, title, description, due, s.clock.Now())
	s.tasks = append(s.tasks, t)

	s.logger.Debug("created regular task", "id", t.ID, "title", t.Title)
	return t.ID
}

// CreateRecurring creates a recurring task and returns its identifier.
// The first next occurrence is computed from the clock's current time.
// Unrecognized frequencies are stored verbatim and advance zero days,
// so the next occurrence starts at "now". There is no failure path.
func (s *Store) CreateRecurring(title, description string, freq domain.Frequency) int64 {
	if !freq.Valid() {
		s.logger.Warn("unrecognized frequency, next occurrence will not advance",
			"frequency", string(freq))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t := domain.NewRecurring(s.nextID, title, description, freq, s.clock.Now())
	s.tasks = append(s.tasks, t)

	s.logger.Debug("created recurring task",
		"id", t.ID,
		"title", t.Title,
		"frequency", string(freq),
		"next_occurrence", t.NextOccurrence)
	return t.ID
}

// Get returns the task with the given identifier. The second return
// value is false when no such task exists; an unknown identifier is not
// an error.
func (s *Store) Get(id int64) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id)
}

// Complete marks the task with the given identifier as completed.
//
// Completing a recurring task additionally recomputes its next
// occurrence from the clock's current time, not from the prior
// occurrence. There is no guard against completing a task twice:
// re-completing a recurring task advances its next occurrence again.
func (s *Store) Complete(id int64) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.find(id)
	if !ok {
		s.logger.Debug("completion of unknown task", "id", id)
		return Result{Success: false, Message: msgTaskNotFound}
	}

	t.Base().Completed = true

	if rec, ok := t.(*domain.Recurring); ok {
		rec.NextOccurrence = rec.Freq.Next(s.clock.Now())
		s.logger.Debug("completed recurring task",
			"id", id,
			"next_occurrence", rec.NextOccurrence)
		return Result{
			Success: true,
			Message: fmt.Sprintf(msgNextOccurrence, rec.NextOccurrence.Format(DueDateLayout)),
		}
	}

	s.logger.Debug("completed task", "id", id)
	return Result{Success: true, Message: msgMarkedComplete}
}

// Filter returns the tasks satisfying pred, in creation order.
func (s *Store) Filter(pred Predicate) []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Task
	for _, t := range s.tasks {
		if pred(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// All returns a snapshot of the full collection in creation order. The
// returned slice is the caller's to keep; the task values themselves
// are shared and should be treated as read-only outside Complete.
func (s *Store) All() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// find does a linear search by identifier. Callers must hold s.mu.
func (s *Store) find(id int64) (domain.Task, bool) {
	for _, t := range s.tasks {
		if t.Base().ID == id {
			return t, true
		}
	}
	return nil, false
}
