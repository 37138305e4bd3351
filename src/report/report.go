package report

import (
	"time"

	"github.com/google/uuid"

	"tradequality/src/model"
)

// Build wraps rule results into a report stamped with a fresh run id.
func Build(results []model.Result, trades int, startedAt time.Time) *model.Report {
	total := 0
	for _, r := range results {
		total += len(r.Violations)
	}
	return &model.Report{
		RunID:      uuid.NewString(),
		StartedAt:  startedAt.UTC(),
		FinishedAt: time.Now().UTC(),
		Trades:     trades,
		Results:    results,
		Total:      total,
	}
}
