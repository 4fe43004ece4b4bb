package leave

import (
	"math"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
)

// MonthlyPaidLeaveLimit is the paid leave an employee accrues per calendar month
const MonthlyPaidLeaveLimit = 1.5

// Entitlements are the yearly allowances per leave type
var Entitlements = map[Type]float64{
	TypeAnnual:   20,
	TypeSick:     10,
	TypePersonal: 5,
	TypeHalfDay:  12,
}

// MonthlyUsage is the paid leave consumed in one month
type MonthlyUsage struct {
	Month     time.Time `json:"month"`
	Used      float64   `json:"used"`
	Limit     float64   `json:"limit"`
	Remaining float64   `json:"remaining"`
}

// PaidUsageInMonth sums approved paid leave of the given requests in month.
// Callers pass one employee's requests.
func PaidUsageInMonth(requests []*Request, month time.Time) MonthlyUsage {
	used := 0.0
	for _, r := range requests {
		if !r.IsApproved() || !r.Type.CountsTowardPaidLimit() {
			continue
		}
		used += r.DaysInMonth(month)
	}
	return MonthlyUsage{
		Month:     shared.MonthStart(month),
		Used:      used,
		Limit:     MonthlyPaidLeaveLimit,
		Remaining: math.Max(0, MonthlyPaidLeaveLimit-used),
	}
}

// WouldExceedPaidLeaveLimit reports whether adding candidate to the employee's
// existing requests pushes any spanned month over the paid limit. The first
// offending month is returned alongside.
func WouldExceedPaidLeaveLimit(existing []*Request, candidate *Request) (bool, time.Time) {
	if !candidate.Type.CountsTowardPaidLimit() {
		return false, time.Time{}
	}
	others := make([]*Request, 0, len(existing))
	for _, r := range existing {
		if r.ID != candidate.ID {
			others = append(others, r)
		}
	}
	for _, month := range shared.MonthsSpanned(candidate.StartDate, candidate.EndDate) {
		usage := PaidUsageInMonth(others, month)
		if usage.Used+candidate.DaysInMonth(month) > MonthlyPaidLeaveLimit {
			return true, month
		}
	}
	return false, time.Time{}
}

// Classify sets candidate.Paid from the leave type and the monthly limit
func Classify(existing []*Request, candidate *Request) {
	switch candidate.Type {
	case TypeUnpaid:
		candidate.Paid = false
	case TypeWorkFromHome:
		candidate.Paid = true
	default:
		exceeds, _ := WouldExceedPaidLeaveLimit(existing, candidate)
		candidate.Paid = !exceeds
	}
}

// TypeBalance is the yearly balance for one leave type
type TypeBalance struct {
	Type      Type    `json:"type"`
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
}

// Balance is an employee's yearly balance across entitled types
type Balance struct {
	Year     int           `json:"year"`
	Balances []TypeBalance `json:"balances"`
}

// CalculateBalance computes the yearly balance from approved requests that
// start in year. Half days count one per request against their own allowance.
func CalculateBalance(requests []*Request, year int) Balance {
	used := make(map[Type]float64, len(Entitlements))
	for _, r := range requests {
		if !r.IsApproved() || r.StartDate.Year() != year {
			continue
		}
		if _, entitled := Entitlements[r.Type]; !entitled {
			continue
		}
		if r.Type == TypeHalfDay {
			used[r.Type]++
			continue
		}
		used[r.Type] += float64(shared.BusinessDays(r.StartDate, r.EndDate))
	}

	out := Balance{Year: year}
	for _, t := range []Type{TypeAnnual, TypeSick, TypePersonal, TypeHalfDay} {
		total := Entitlements[t]
		out.Balances = append(out.Balances, TypeBalance{
			Type:      t,
			Total:     total,
			Used:      used[t],
			Remaining: math.Max(0, total-used[t]),
		})
	}
	return out
}

// Analytics summarises a set of leave requests
type Analytics struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	Rejected     int `json:"rejected"`
	ThisMonth    int `json:"this_month"`
	WorkFromHome int `json:"work_from_home"`
}

// Analyze counts requests by status; ThisMonth counts requests starting in now's month
func Analyze(requests []*Request, now time.Time) Analytics {
	var a Analytics
	ms, me := shared.MonthStart(now), shared.MonthEnd(now)
	for _, r := range requests {
		a.Total++
		switch r.Status {
		case StatusPending:
			a.Pending++
		case StatusApproved:
			a.Approved++
		case StatusRejected:
			a.Rejected++
		}
		if !r.StartDate.Before(ms) && !r.StartDate.After(me) {
			a.ThisMonth++
		}
		if r.Type == TypeWorkFromHome {
			a.WorkFromHome++
		}
	}
	return a
}
