package business

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const MaxPointsPerCheckIn = 10_000

var ErrInvalidPointsPerCheckIn = errors.New("points per check-in must be between 1 and 10000")

// EarningPolicy is a business's check-in award setting. A business is known
// to the ledger once it has one.
type EarningPolicy struct {
	businessID       uuid.UUID
	pointsPerCheckIn int64
	updatedAt        time.Time
}

func NewEarningPolicy(businessID uuid.UUID, pointsPerCheckIn int64, now time.Time) (*EarningPolicy, error) {
	if pointsPerCheckIn <= 0 || pointsPerCheckIn > MaxPointsPerCheckIn {
		return nil, ErrInvalidPointsPerCheckIn
	}
	return &EarningPolicy{
		businessID:       businessID,
		pointsPerCheckIn: pointsPerCheckIn,
		updatedAt:        now,
	}, nil
}

func ReconstructEarningPolicy(businessID uuid.UUID, pointsPerCheckIn int64, updatedAt time.Time) *EarningPolicy {
	return &EarningPolicy{
		businessID:       businessID,
		pointsPerCheckIn: pointsPerCheckIn,
		updatedAt:        updatedAt,
	}
}

// PointsFor returns the award for one check-in, falling back to def when the
// stored setting is unusable.
func (p *EarningPolicy) PointsFor(def int64) int64 {
	if p == nil || p.pointsPerCheckIn <= 0 {
		return def
	}
	return p.pointsPerCheckIn
}

func (p *EarningPolicy) BusinessID() uuid.UUID   { return p.businessID }
func (p *EarningPolicy) PointsPerCheckIn() int64 { return p.pointsPerCheckIn }
func (p *EarningPolicy) UpdatedAt() time.Time    { return p.updatedAt }
