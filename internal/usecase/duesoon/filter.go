package duesoon

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// Window selects which slice of the calendar the due list covers
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query-string value onto a Window, defaulting to all
func ParseWindow(raw string) (Window, error) {
	switch Window(raw) {
	case WindowAll, "":
		return WindowAll, nil
	case WindowWeek:
		return WindowWeek, nil
	case WindowMonth:
		return WindowMonth, nil
	default:
		return "", fmt.Errorf("unknown filter window %q", raw)
	}
}

// DueItem is one row of the upcoming-payments list
type DueItem struct {
	Account      domain.PayableAccount
	DaysUntilDue int
	DueLabel     string
}

// IncomeItem is one row of the upcoming-income list
type IncomeItem struct {
	Source       domain.IncomeSource
	DaysUntilPay int
	PayLabel     string
}

// FilterDueSoon produces the ordered upcoming-payments list for one user.
// Pure over its inputs: the slices are never mutated and running it twice on
// identical input yields identical output.
//
// Logic:
//  1. Recency suppression: drop any account with a paid payment record
//     settled within the last 30 days, regardless of the selected window.
//     Payment records whose account ID is not in the caller's own account set
//     are ignored (fail open), so a shared payment table cannot leak
//     suppression across users.
//  2. Window filter on the due date (see inWindow). An account with no due
//     date is excluded from week/month but kept under all, due now.
//  3. Sort ascending by days until due: most overdue first.
func FilterDueSoon(accounts []domain.PayableAccount, payments []*domain.PaymentRecord, window Window, today time.Time) []DueItem {
	owned := make(map[uuid.UUID]struct{}, len(accounts))
	for _, acct := range accounts {
		owned[acct.ID] = struct{}{}
	}

	recent := make(map[recencyKey]struct{})
	for _, rec := range payments {
		if _, ok := owned[rec.AccountID]; !ok {
			continue
		}
		if rec.SettledWithin(domain.RecencyWindow, today) {
			key := recencyKey{rec.AccountID, domain.NormalizeAccountType(string(rec.AccountType))}
			recent[key] = struct{}{}
		}
	}

	items := make([]DueItem, 0, len(accounts))
	for _, acct := range accounts {
		key := recencyKey{acct.ID, domain.NormalizeAccountType(string(acct.AccountType))}
		if _, ok := recent[key]; ok {
			continue
		}
		if !inWindow(acct.NextDueDate, window, today) {
			continue
		}

		days := 0
		if acct.NextDueDate != nil {
			days = DaysUntilDue(*acct.NextDueDate, today)
		}
		items = append(items, DueItem{
			Account:      acct,
			DaysUntilDue: days,
			DueLabel:     DueLabel(days),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilDue < items[j].DaysUntilDue
	})
	return items
}

// FilterUpcomingIncome produces the ordered upcoming-income list. Income has
// no settlement records, so there is no recency suppression: only the window
// filter and ordering apply. Inactive sources are dropped.
func FilterUpcomingIncome(sources []*domain.IncomeSource, window Window, today time.Time) []IncomeItem {
	items := make([]IncomeItem, 0, len(sources))
	for _, src := range sources {
		if !src.IsActive {
			continue
		}
		if !inWindow(src.NextPayDate, window, today) {
			continue
		}

		days := 0
		if src.NextPayDate != nil {
			days = DaysUntilDue(*src.NextPayDate, today)
		}
		items = append(items, IncomeItem{
			Source:       *src,
			DaysUntilPay: days,
			PayLabel:     DueLabel(days),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilPay < items[j].DaysUntilPay
	})
	return items
}

type recencyKey struct {
	accountID   uuid.UUID
	accountType domain.AccountType
}

// DaysUntilDue returns ceil((due - today) / 24h). Negative values denote
// overdue items.
func DaysUntilDue(due, today time.Time) int {
	return int(math.Ceil(due.Sub(today).Hours() / 24))
}

// DueLabel maps a days-until-due value onto its display label
func DueLabel(days int) string {
	switch {
	case days == 0:
		return "Due Today"
	case days == 1:
		return "Due Tomorrow"
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	default:
		return fmt.Sprintf("%d days", days)
	}
}

// inWindow reports whether a nullable due date falls inside the selected
// window relative to today.
//
//   - all: everything passes, including a missing due date (surfaced as due
//     now rather than silently dropped).
//   - week: the current calendar week, Sunday 00:00:00.000 through Saturday
//     23:59:59.999 local time.
//   - month: same calendar month and year as today. This is a calendar-month
//     filter, not a rolling 30-day window.
func inWindow(due *time.Time, window Window, today time.Time) bool {
	switch window {
	case WindowWeek:
		if due == nil {
			return false
		}
		start, end := WeekBounds(today)
		return !due.Before(start) && !due.After(end)
	case WindowMonth:
		if due == nil {
			return false
		}
		return due.Month() == today.Month() && due.Year() == today.Year()
	default:
		return true
	}
}

// WeekBounds returns the current calendar week around today: the most recent
// Sunday at midnight through the following Saturday at 23:59:59.999, in
// today's location. The Sunday start is a product convention and is
// preserved exactly.
func WeekBounds(today time.Time) (start, end time.Time) {
	year, month, day := today.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	start = midnight.AddDate(0, 0, -int(today.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}
