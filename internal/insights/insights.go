// Package insights turns budget analytics into short advice for the user.
package insights

import (
	"fmt"

	"github.com/billtrail/backend/internal/analytics"
	"github.com/billtrail/backend/internal/money"
	"github.com/billtrail/backend/internal/variability"
	"github.com/shopspring/decimal"
)

// SavingsCategory is the category that can get a savings insight.
const SavingsCategory = "Utilities"

// MinInsights is the number of insights below which the general tips are added.
const MinInsights = 3

// Tips are appended when the analytics yield fewer than MinInsights insights.
var Tips = []string{
	"Setting up automatic payments can help you avoid late fees.",
	"Consider allocating 50-30-20 of your income to needs, wants, and savings.",
}

// Generator generates insights.
type Generator struct {
	Source    variability.Source
	Formatter money.Formatter
}

// Generate returns the insights for the analytics, in analytics order.
//
// For each entry, at most one of the over budget, near limit and low usage
// messages is produced. Entries for the savings category may additionally
// get a savings message, depending on the variability source.
func (g Generator) Generate(entries []analytics.Analytics) []string {
	insights := []string{}

	for _, a := range entries {
		switch {
		case a.Status == analytics.StatusOver:
			insights = append(insights, fmt.Sprintf("You've exceeded your %s budget by %s.", a.Category, g.Formatter.Format(a.Remaining.Abs())))
		case a.Status == analytics.StatusNear:
			insights = append(insights, fmt.Sprintf("You're close to reaching your %s budget limit.", a.Category))
		case a.Remaining.GreaterThan(a.Budgeted.Mul(decimal.NewFromFloat(0.5))):
			insights = append(insights, fmt.Sprintf("You've only used %d%% of your %s budget.", a.PercentUsed(), a.Category))
		}

		if a.Category == SavingsCategory && g.Source.Float64() > 0.5 {
			saved := decimal.NewFromInt(int64(100 + g.Source.IntN(500)))
			insights = append(insights, fmt.Sprintf("You saved %s this month in %s compared to last month.", g.Formatter.Format(saved), a.Category))
		}
	}

	if len(insights) < MinInsights {
		insights = append(insights, Tips...)
	}

	return insights
}
