package reconciliation

import (
	"sort"
	"sync"

	"github.com/staffsight/hr-analytics-go/internal/domain/reconciliation"
)

// countersGuard accumulates run totals across the worker pool.
type countersGuard struct {
	mu         sync.Mutex
	unapproved int
	updated    int
	failures   []reconciliation.RowFailure
}

func (c *countersGuard) addUnapproved() {
	c.mu.Lock()
	c.unapproved++
	c.mu.Unlock()
}

func (c *countersGuard) addUpdated() {
	c.mu.Lock()
	c.updated++
	c.mu.Unlock()
}

func (c *countersGuard) addFailure(f reconciliation.RowFailure) {
	c.mu.Lock()
	c.failures = append(c.failures, f)
	c.mu.Unlock()
}

// snapshot returns the totals with failures in stable order, since worker
// completion order is not deterministic.
func (c *countersGuard) snapshot() (unapproved, updated int, failures []reconciliation.RowFailure) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sort.Slice(c.failures, func(i, j int) bool {
		if c.failures[i].EmployeeID != c.failures[j].EmployeeID {
			return c.failures[i].EmployeeID < c.failures[j].EmployeeID
		}
		return c.failures[i].Date < c.failures[j].Date
	})

	return c.unapproved, c.updated, c.failures
}
