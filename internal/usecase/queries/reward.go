package queries

import (
	"context"

	"github.com/google/uuid"
)

type RewardQueries interface {
	ListActive(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error)
	ListAll(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error)
	Progress(ctx context.Context, customerID, businessID uuid.UUID) ([]*RewardProgressView, error)
}

type rewardQueriesImpl struct {
	store  RewardReadStore
	ledger LedgerReader
}

func NewRewardQueries(store RewardReadStore, ledger LedgerReader) RewardQueries {
	return &rewardQueriesImpl{store: store, ledger: ledger}
}

func (q *rewardQueriesImpl) ListActive(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error) {
	return q.store.ListActive(ctx, businessID)
}

func (q *rewardQueriesImpl) ListAll(ctx context.Context, businessID uuid.UUID) ([]*RewardView, error) {
	return q.store.ListAll(ctx, businessID)
}

// Progress pairs every active reward with how close the customer is to it.
func (q *rewardQueriesImpl) Progress(ctx context.Context, customerID, businessID uuid.UUID) ([]*RewardProgressView, error) {
	rewards, err := q.store.ListActive(ctx, businessID)
	if err != nil {
		return nil, err
	}
	balance, err := q.ledger.Balance(ctx, customerID, businessID)
	if err != nil {
		return nil, err
	}

	result := make([]*RewardProgressView, len(rewards))
	for i, r := range rewards {
		result[i] = newRewardProgress(r, balance)
	}
	return result, nil
}

func newRewardProgress(r *RewardView, balance int64) *RewardProgressView {
	needed := r.PointsCost - balance
	if needed < 0 {
		needed = 0
	}
	percent := 100
	if needed > 0 {
		percent = int(balance * 100 / r.PointsCost)
	}
	return &RewardProgressView{
		RewardView:   *r,
		Balance:      balance,
		PointsNeeded: needed,
		Percent:      percent,
		Redeemable:   needed == 0,
	}
}
