package redemption

import (
	"errors"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/reward"

	"github.com/google/uuid"
)

var ErrDebitMismatch = errors.New("debit entry does not match reward")

// Redemption pairs a reward with the debit entry that paid for it. Both are
// written in the same unit of work and never change afterwards.
type Redemption struct {
	id            uuid.UUID
	customerID    uuid.UUID
	businessID    uuid.UUID
	rewardID      uuid.UUID
	ledgerEntryID uuid.UUID
	pointsSpent   int64
	createdAt     time.Time
}

func NewRedemption(rw *reward.Reward, debit *ledger.Entry, now time.Time) (*Redemption, error) {
	if err := rw.CanBeRedeemed(); err != nil {
		return nil, err
	}
	if !debit.IsDebit() ||
		debit.Reason() != ledger.ReasonRedemption ||
		debit.BusinessID() != rw.BusinessID() ||
		debit.Magnitude() != rw.PointsCost() {
		return nil, ErrDebitMismatch
	}

	return &Redemption{
		id:            uuid.New(),
		customerID:    debit.CustomerID(),
		businessID:    debit.BusinessID(),
		rewardID:      rw.ID(),
		ledgerEntryID: debit.ID(),
		pointsSpent:   debit.Magnitude(),
		createdAt:     now,
	}, nil
}

func ReconstructRedemption(
	id, customerID, businessID, rewardID, ledgerEntryID uuid.UUID,
	pointsSpent int64,
	createdAt time.Time,
) *Redemption {
	return &Redemption{
		id:            id,
		customerID:    customerID,
		businessID:    businessID,
		rewardID:      rewardID,
		ledgerEntryID: ledgerEntryID,
		pointsSpent:   pointsSpent,
		createdAt:     createdAt,
	}
}

func (r *Redemption) ID() uuid.UUID            { return r.id }
func (r *Redemption) CustomerID() uuid.UUID    { return r.customerID }
func (r *Redemption) BusinessID() uuid.UUID    { return r.businessID }
func (r *Redemption) RewardID() uuid.UUID      { return r.rewardID }
func (r *Redemption) LedgerEntryID() uuid.UUID { return r.ledgerEntryID }
func (r *Redemption) PointsSpent() int64       { return r.pointsSpent }
func (r *Redemption) CreatedAt() time.Time     { return r.createdAt }
