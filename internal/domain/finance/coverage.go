package finance

import (
	"time"

	"github.com/google/uuid"
)

// CoverageTracker answers whether a courier's expense on a given calendar day
// is already accounted for by a confirmed settlement. Days are marked with
// union semantics: overlapping settlements cover a day once, never twice.
type CoverageTracker struct {
	covered map[uuid.UUID]map[time.Time]struct{}
}

// NewCoverageTracker marks every day of every confirmed settlement's
// inclusive span. Cost is linear in total settlement-days, so callers must
// bound the settlement set by their query window.
func NewCoverageTracker(settlements []SettlementRecord) *CoverageTracker {
	t := &CoverageTracker{
		covered: make(map[uuid.UUID]map[time.Time]struct{}),
	}
	for _, s := range settlements {
		if !s.Status.IsConfirmed() {
			continue
		}
		days := t.covered[s.CourierID]
		if days == nil {
			days = make(map[time.Time]struct{})
			t.covered[s.CourierID] = days
		}
		end := DateOf(s.PeriodEnd)
		for day := DateOf(s.PeriodStart); !day.After(end); day = day.AddDate(0, 0, 1) {
			days[day] = struct{}{}
		}
	}
	return t
}

// IsCovered reports whether the courier's expense on the given date is
// settled.
func (t *CoverageTracker) IsCovered(courierID uuid.UUID, date time.Time) bool {
	days, ok := t.covered[courierID]
	if !ok {
		return false
	}
	_, ok = days[DateOf(date)]
	return ok
}

// CoveredDays returns how many distinct days are covered for a courier.
func (t *CoverageTracker) CoveredDays(courierID uuid.UUID) int {
	return len(t.covered[courierID])
}
