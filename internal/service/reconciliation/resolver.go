package reconciliation

import (
	"log/slog"
	"sort"

	"github.com/staffsight/hr-analytics-go/internal/domain/attendance"
	"github.com/staffsight/hr-analytics-go/internal/domain/coverage"
)

// Resolution is the outcome of resolving one (employee, date) pair.
type Resolution struct {
	// Label is the attendance status the observation should carry.
	Label string
	// Unapproved is true when no coverage survived for the day and the
	// observation keeps its raw "Absent" status.
	Unapproved bool
}

// Resolve decides the attendance label for a single (employee, date) pair
// from the coverage records that survived upstream filtering. Leave beats
// regularization; no coverage keeps the absence as-is. Approval status is
// not re-checked here: rejected and cancelled records were already excluded
// when coverage was derived.
//
// Pure and deterministic: same records in, same resolution out.
func Resolve(records []coverage.Record) Resolution {
	if len(records) == 0 {
		return Resolution{Label: attendance.StatusAbsent, Unapproved: true}
	}

	sorted := make([]coverage.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind == coverage.KindLeave
		}
		return sorted[i].SourceID < sorted[j].SourceID
	})

	leaveCount := 0
	for _, r := range sorted {
		if r.Kind == coverage.KindLeave {
			leaveCount++
		}
	}

	winner := sorted[0]
	if leaveCount > 1 {
		// Overlapping leave for one day is a data-quality problem, not a
		// fatal one. First in stable order wins.
		slog.Warn("multiple leave coverages for a single day",
			"employee_id", winner.EmployeeID,
			"date", winner.Date.Format("2006-01-02"),
			"count", leaveCount,
			"picked", winner.Label)
	}

	return Resolution{Label: winner.Label}
}
