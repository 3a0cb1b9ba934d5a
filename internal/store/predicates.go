package store

import "github.com/phrazzld/tasktrack/internal/domain"

// Predicate selects tasks during a Filter call. Any closure over a task
// works; the helpers below cover the common cases.
type Predicate func(domain.Task) bool

// TypeIs matches tasks of the given variant.
func TypeIs(tt domain.Type) Predicate {
	return func(t domain.Task) bool { return t.Type() == tt }
}

// IsCompleted matches tasks that have been completed at least once.
func IsCompleted(t domain.Task) bool { return t.Base().Completed }

// IsPending matches tasks that have never been completed.
func IsPending(t domain.Task) bool { return !t.Base().Completed }
