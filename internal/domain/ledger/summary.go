package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Summary is the dashboard projection of one partition. Every field is
// derived from entries and redemptions; none is stored.
type Summary struct {
	Balance         int64
	VisitCount      int64
	LastVisit       *time.Time
	TotalEarned     int64
	TotalSpent      int64
	RewardsRedeemed int64
}

// Accrual is one row of a business leaderboard.
type Accrual struct {
	CustomerID  uuid.UUID
	TotalEarned int64
	VisitCount  int64
	LastVisit   *time.Time
}

// CustomerBalance is one business's row in a customer's cross-business overview.
type CustomerBalance struct {
	BusinessID uuid.UUID
	Summary
}

type BusinessStats struct {
	TotalCheckIns   int64
	ActiveCustomers int64
	RewardsRedeemed int64
	PointsIssued    int64
	// CheckInsSince counts check-ins at or after the window start the caller asked for.
	CheckInsSince int64
}

// CountCheckInsSince counts check-in entries created at or after since.
func CountCheckInsSince(entries []*Entry, since time.Time) int64 {
	var n int64
	for _, e := range entries {
		if e.reason == ReasonCheckIn && !e.createdAt.Before(since) {
			n++
		}
	}
	return n
}

// Summarize computes a Summary by scanning entries. Stores with an aggregate
// query must agree with it.
func Summarize(entries []*Entry, rewardsRedeemed int64) Summary {
	s := Summary{RewardsRedeemed: rewardsRedeemed}
	for _, e := range entries {
		s.Balance += e.delta
		if e.delta > 0 {
			s.TotalEarned += e.delta
		} else {
			s.TotalSpent += -e.delta
		}
		if e.reason == ReasonCheckIn {
			s.VisitCount++
			if s.LastVisit == nil || e.createdAt.After(*s.LastVisit) {
				t := e.createdAt
				s.LastVisit = &t
			}
		}
	}
	return s
}
