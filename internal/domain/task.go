package domain

import (
	"encoding/json"
	"time"
)

// Type discriminates the two task variants.
type Type string

// Possible task type values
const (
	TypeRegular   Type = "regular"
	TypeRecurring Type = "recurring"
)

// Meta holds the fields shared by both task variants. The ID and
// CreatedAt fields are immutable once the task has been constructed;
// Completed is only ever flipped through the store's completion path.
type Meta struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task is the sum of the two task variants. Exactly two types implement
// it: *Regular and *Recurring. The unexported method keeps the set of
// variants closed, which makes "DueDate only on Regular, NextOccurrence
// only on Recurring" hold by construction.
type Task interface {
	// Base returns the fields shared by both variants.
	Base() *Meta

	// Type returns the variant discriminator.
	Type() Type

	sealed()
}

// Regular is a one-shot task with an optional due date.
type Regular struct {
	Meta
	// DueDate is nil when the task has no due date. Only the date
	// component is meaningful.
	DueDate *time.Time `json:"due_date,omitempty"`
}

// NewRegular creates a Regular task with the given identity and content.
// A nil dueDate means the task has no due date.
func NewRegular(id int64, title, description string, dueDate *time.Time, now time.Time) *Regular {
	return &Regular{
		Meta: Meta{
			ID:          id,
			Title:       title,
			Description: description,
			CreatedAt:   now,
		},
		DueDate: dueDate,
	}
}

// Base implements the Task interface.
func (t *Regular) Base() *Meta { return &t.Meta }

// Type implements the Task interface.
func (t *Regular) Type() Type { return TypeRegular }

func (*Regular) sealed() {}

// MarshalJSON adds the type discriminator to the encoded task.
func (t *Regular) MarshalJSON() ([]byte, error) {
	type alias Regular
	return json.Marshal(struct {
		Type Type `json:"type"`
		*alias
	}{TypeRegular, (*alias)(t)})
}

// Recurring is a task that repeats on a fixed frequency. Completing it
// advances NextOccurrence instead of terminating the task.
type Recurring struct {
	Meta
	Freq           Frequency `json:"frequency"`
	NextOccurrence time.Time `json:"next_occurrence"`
}

// NewRecurring creates a Recurring task and computes its first
// NextOccurrence from now. The frequency is stored verbatim, even when
// unrecognized; an unrecognized frequency leaves NextOccurrence at now.
func NewRecurring(id int64, title, description string, freq Frequency, now time.Time) *Recurring {
	return &Recurring{
		Meta: Meta{
			ID:          id,
			Title:       title,
			Description: description,
			CreatedAt:   now,
		},
		Freq:           freq,
		NextOccurrence: freq.Next(now),
	}
}

// Base implements the Task interface.
func (t *Recurring) Base() *Meta { return &t.Meta }

// Type implements the Task interface.
func (t *Recurring) Type() Type { return TypeRecurring }

func (*Recurring) sealed() {}

// MarshalJSON adds the type discriminator to the encoded task.
func (t *Recurring) MarshalJSON() ([]byte, error) {
	type alias Recurring
	return json.Marshal(struct {
		Type Type `json:"type"`
		*alias
	}{TypeRecurring, (*alias)(t)})
}
