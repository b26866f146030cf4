//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/readstore"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/usecase/queries"
	readstoremock "loyalty-ledger/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedemptionReadStore_ListForPartition(t *testing.T) {
	ctx := context.Background()
	p := ledger.Partition{CustomerID: uuid.New(), BusinessID: uuid.New()}
	at := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
	row := sqlc.ListRedemptionsForPartitionRow{
		ID:            uuid.New(),
		CustomerID:    p.CustomerID,
		BusinessID:    p.BusinessID,
		RewardID:      uuid.New(),
		RewardName:    "Free coffee",
		LedgerEntryID: uuid.New(),
		PointsSpent:   100,
		CreatedAt:     ts(at),
	}

	t.Run("maps rows with reward name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRedemptionReadQueries(ctrl)
		mockQueries.EXPECT().
			ListRedemptionsForPartition(ctx, gomock.Any(), sqlc.ListRedemptionsForPartitionParams{
				CustomerID: p.CustomerID,
				BusinessID: p.BusinessID,
				Limit:      10,
			}).
			Return([]sqlc.ListRedemptionsForPartitionRow{row}, nil)

		store := readstore.NewRedemptionReadStore(mockQueries, &mockDBTX{})
		views, err := store.ListForPartition(ctx, p, 10)

		require.NoError(t, err)
		want := []*queries.RedemptionView{{
			ID:            row.ID,
			CustomerID:    p.CustomerID,
			BusinessID:    p.BusinessID,
			RewardID:      row.RewardID,
			RewardName:    "Free coffee",
			LedgerEntryID: row.LedgerEntryID,
			PointsSpent:   100,
			CreatedAt:     at,
		}}
		if diff := cmp.Diff(want, views); diff != "" {
			t.Errorf("views mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("wraps query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRedemptionReadQueries(ctrl)
		mockQueries.EXPECT().ListRedemptionsForPartition(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		store := readstore.NewRedemptionReadStore(mockQueries, &mockDBTX{})
		_, err := store.ListForPartition(ctx, p, 10)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestRedemptionReadStore_FindByLedgerEntryID(t *testing.T) {
	ctx := context.Background()
	entryID := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRedemptionReadQueries(ctrl)
		mockQueries.EXPECT().GetRedemptionByLedgerEntryID(ctx, gomock.Any(), entryID).
			Return(sqlc.Redemptions{ID: uuid.New(), LedgerEntryID: entryID, PointsSpent: 40, CreatedAt: ts(time.Now())}, nil)

		store := readstore.NewRedemptionReadStore(mockQueries, &mockDBTX{})
		r, err := store.FindByLedgerEntryID(ctx, entryID)

		require.NoError(t, err)
		assert.Equal(t, entryID, r.LedgerEntryID())
		assert.Equal(t, int64(40), r.PointsSpent())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRedemptionReadQueries(ctrl)
		mockQueries.EXPECT().GetRedemptionByLedgerEntryID(ctx, gomock.Any(), entryID).Return(sqlc.Redemptions{}, pgx.ErrNoRows)

		store := readstore.NewRedemptionReadStore(mockQueries, &mockDBTX{})
		_, err := store.FindByLedgerEntryID(ctx, entryID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
