package finance

import (
	"time"

	"github.com/courierops/backend/internal/domain/shared/valueobject"
)

// BuildDailyEvolution emits one row per calendar day in [start, end]
// inclusive, ascending, with missing days zero-filled. For an N-day window
// the result always has exactly N rows.
func BuildDailyEvolution(
	start, end time.Time,
	revenue *RevenueAggregate,
	expense *ExpenseAggregate,
) []DailyEvolutionRow {
	first := DateOf(start)
	last := DateOf(end)

	rows := make([]DailyEvolutionRow, 0, DaysBetween(first, last))
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		receita := valueobject.Cents(revenue.RevenueOn(day))
		despesa := valueobject.Cents(expense.ExpenseOn(day))
		rows = append(rows, DailyEvolutionRow{
			Data:    day,
			Receita: receita,
			Despesa: despesa,
			Lucro:   receita.Sub(despesa),
		})
	}
	return rows
}
