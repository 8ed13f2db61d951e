package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
)

type expenseSource interface {
	ExpensesBetween(ctx context.Context, from, to time.Time) ([]models.Expense, error)
}

// ExpenseRule watches the current calendar month's spending. It raises a
// warning when the total approaches the budget, an alert when it crosses
// it, and a settle-up nudge when one member has paid disproportionately.
// Each signal fires at most once per month.
type ExpenseRule struct {
	source        expenseSource
	warnAt        decimal.Decimal
	alertAt       decimal.Decimal
	imbalanceOver decimal.Decimal
}

// NewExpenseRule builds the expense rule with the product's thresholds.
func NewExpenseRule(source expenseSource, warnAt, alertAt, imbalanceOver decimal.Decimal) (*ExpenseRule, error) {
	if source == nil {
		return nil, fmt.Errorf("expense source required")
	}
	if alertAt.LessThanOrEqual(warnAt) {
		return nil, fmt.Errorf("alert threshold %s must exceed warn threshold %s", alertAt, warnAt)
	}
	return &ExpenseRule{
		source:        source,
		warnAt:        warnAt,
		alertAt:       alertAt,
		imbalanceOver: imbalanceOver,
	}, nil
}

func (r *ExpenseRule) Name() string { return "expense-alerts" }

func (r *ExpenseRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	expenses, err := r.source.ExpensesBetween(ctx, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("list month expenses: %w", err)
	}

	month := now.Format(monthFormat)
	total := decimal.Zero
	byPayer := map[string]decimal.Decimal{}
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		if !expense.Settled {
			byPayer[expense.PaidBy] = byPayer[expense.PaidBy].Add(expense.Amount)
		}
	}

	var out []Candidate
	switch {
	case total.GreaterThanOrEqual(r.alertAt):
		out = append(out, Candidate{
			Key: fmt.Sprintf("expense:%s", month),
			Draft: notifications.Draft{
				Title:    "Monthly spending over budget",
				Message:  fmt.Sprintf("Shared expenses hit $%s this month, over the $%s budget.", total.StringFixed(2), r.alertAt.StringFixed(2)),
				Kind:     notifications.KindWarning,
				Category: notifications.CategoryExpense,
				Priority: notifications.PriorityMedium,
			},
		})
	case total.GreaterThanOrEqual(r.warnAt):
		out = append(out, Candidate{
			Key: fmt.Sprintf("expense-warn:%s", month),
			Draft: notifications.Draft{
				Title:    "Approaching monthly budget",
				Message:  fmt.Sprintf("Shared expenses reached $%s this month, nearing the $%s budget.", total.StringFixed(2), r.alertAt.StringFixed(2)),
				Kind:     notifications.KindWarning,
				Category: notifications.CategoryExpense,
				Priority: notifications.PriorityLow,
			},
		})
	}

	if gap := payerGap(byPayer); gap.GreaterThanOrEqual(r.imbalanceOver) && r.imbalanceOver.GreaterThan(decimal.Zero) {
		out = append(out, Candidate{
			Key: fmt.Sprintf("expense-settle:%s", month),
			Draft: notifications.Draft{
				Title:    "Time to settle up",
				Message:  fmt.Sprintf("Unsettled expenses are $%s apart between members.", gap.StringFixed(2)),
				Kind:     notifications.KindInfo,
				Category: notifications.CategoryExpense,
				Priority: notifications.PriorityLow,
			},
		})
	}
	return out, nil
}

// payerGap returns the spread between the highest and lowest unsettled
// totals, zero unless at least two members have paid.
func payerGap(byPayer map[string]decimal.Decimal) decimal.Decimal {
	if len(byPayer) < 2 {
		return decimal.Zero
	}
	var minPaid, maxPaid decimal.Decimal
	first := true
	for _, paid := range byPayer {
		if first {
			minPaid, maxPaid = paid, paid
			first = false
			continue
		}
		if paid.LessThan(minPaid) {
			minPaid = paid
		}
		if paid.GreaterThan(maxPaid) {
			maxPaid = paid
		}
	}
	return maxPaid.Sub(minPaid)
}
