package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"savings-ledger/internal/domain/contribution"
	"savings-ledger/internal/domain/loan"
	"savings-ledger/internal/domain/member"
)

// ComputeMemberTotals sums contribution amounts per member id. Every member passed
// in is present, zero when they have not contributed. Contributions whose member
// is not in the list are still summed under their own id.
func ComputeMemberTotals(contributions []contribution.Contribution, members []member.Member) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(members))
	for _, m := range members {
		totals[m.MemberID] = decimal.Zero
	}
	for _, c := range contributions {
		cur, ok := totals[c.MemberID]
		if !ok {
			cur = decimal.Zero
		}
		totals[c.MemberID] = cur.Add(c.Amount)
	}
	return totals
}

type MemberTotal struct {
	MemberID string          `json:"member_id"`
	FullName string          `json:"full_name"`
	Total    decimal.Decimal `json:"total"`
}

// MemberTotalsReport orders totals by amount descending, then name, then id.
func MemberTotalsReport(contributions []contribution.Contribution, members []member.Member) []MemberTotal {
	totals := ComputeMemberTotals(contributions, members)
	names := memberNames(members)

	rows := make([]MemberTotal, 0, len(totals))
	for id, total := range totals {
		name, ok := names[id]
		if !ok {
			name = UnknownMember
		}
		rows = append(rows, MemberTotal{MemberID: id, FullName: name, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if c := rows[i].Total.Cmp(rows[j].Total); c != 0 {
			return c > 0
		}
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].MemberID < rows[j].MemberID
	})
	return rows
}

type MonthTotal struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

// MonthlyContributionTrend sums completed contributions per calendar month, oldest first.
func MonthlyContributionTrend(contributions []contribution.Contribution) []MonthTotal {
	byMonth := map[string]decimal.Decimal{}
	for _, c := range contributions {
		if c.Status != contribution.StatusCompleted {
			continue
		}
		key := c.PaymentDate.UTC().Format("2006-01")
		cur, ok := byMonth[key]
		if !ok {
			cur = decimal.Zero
		}
		byMonth[key] = cur.Add(c.Amount)
	}

	out := make([]MonthTotal, 0, len(byMonth))
	for k, v := range byMonth {
		out = append(out, MonthTotal{Month: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// LoanStatusDistribution counts loans per status. Active and paid are always present.
func LoanStatusDistribution(loans []loan.Loan) map[loan.Status]int {
	dist := map[loan.Status]int{
		loan.StatusActive: 0,
		loan.StatusPaid:   0,
	}
	for _, l := range loans {
		dist[l.Status]++
	}
	return dist
}

func ResolveMemberName(members []member.Member, memberID string) string {
	for _, m := range members {
		if m.MemberID == memberID {
			return m.FullName
		}
	}
	return UnknownMember
}

func memberNames(members []member.Member) map[string]string {
	out := make(map[string]string, len(members))
	for _, m := range members {
		out[m.MemberID] = m.FullName
	}
	return out
}
