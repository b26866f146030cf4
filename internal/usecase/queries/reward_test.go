//go:build unit

package queries_test

import (
	"context"
	"testing"

	"loyalty-ledger/internal/usecase/queries"
	queriesmock "loyalty-ledger/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRewardQueries_Progress(t *testing.T) {
	ctx := context.Background()
	customerID, businessID := uuid.New(), uuid.New()

	coffee := &queries.RewardView{ID: uuid.New(), BusinessID: businessID, Name: "Free coffee", PointsCost: 100, Active: true}
	lunch := &queries.RewardView{ID: uuid.New(), BusinessID: businessID, Name: "Free lunch", PointsCost: 400, Active: true}

	testCases := []struct {
		name     string
		balance  int64
		expected []struct {
			needed     int64
			percent    int
			redeemable bool
		}
	}{
		{
			name:    "partial progress",
			balance: 50,
			expected: []struct {
				needed     int64
				percent    int
				redeemable bool
			}{{50, 50, false}, {350, 12, false}},
		},
		{
			name:    "one reward reachable",
			balance: 150,
			expected: []struct {
				needed     int64
				percent    int
				redeemable bool
			}{{0, 100, true}, {250, 37, false}},
		},
		{
			name:    "empty balance",
			balance: 0,
			expected: []struct {
				needed     int64
				percent    int
				redeemable bool
			}{{100, 0, false}, {400, 0, false}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := queriesmock.NewMockRewardReadStore(ctrl)
			mockLedger := queriesmock.NewMockLedgerReader(ctrl)
			mockStore.EXPECT().ListActive(ctx, businessID).Return([]*queries.RewardView{coffee, lunch}, nil)
			mockLedger.EXPECT().Balance(ctx, customerID, businessID).Return(tc.balance, nil)

			got, err := queries.NewRewardQueries(mockStore, mockLedger).Progress(ctx, customerID, businessID)
			require.NoError(t, err)
			require.Len(t, got, len(tc.expected))

			for i, want := range tc.expected {
				assert.Equal(t, tc.balance, got[i].Balance)
				assert.Equal(t, want.needed, got[i].PointsNeeded, "needed[%d]", i)
				assert.Equal(t, want.percent, got[i].Percent, "percent[%d]", i)
				assert.Equal(t, want.redeemable, got[i].Redeemable, "redeemable[%d]", i)
			}
		})
	}
}

func TestRewardQueries_Progress_StoreError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	businessID := uuid.New()

	mockStore := queriesmock.NewMockRewardReadStore(ctrl)
	mockStore.EXPECT().ListActive(ctx, businessID).Return(nil, errStoreDown)

	_, err := queries.NewRewardQueries(mockStore, queriesmock.NewMockLedgerReader(ctrl)).Progress(ctx, uuid.New(), businessID)
	assert.ErrorIs(t, err, errStoreDown)
}
