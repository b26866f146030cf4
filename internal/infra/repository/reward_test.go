//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/infra"
	"loyalty-ledger/internal/infra/repository"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	repositorymock "loyalty-ledger/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Reward Create / Update Tests
// =============================================================================

func TestRewardRepository_Create(t *testing.T) {
	ctx := context.Background()
	rw, err := reward.NewReward(uuid.Nil, uuid.New(), "Free coffee", "", 100, time.Now())
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRewardWriteQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: reward created",
			setupMock: func(mock *repositorymock.MockRewardWriteQueries) {
				mock.EXPECT().CreateReward(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Rewards{ID: rw.ID()}, nil)
			},
		},
		{
			name: "error: business not registered",
			setupMock: func(mock *repositorymock.MockRewardWriteQueries) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateReward(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Rewards{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardWriteQueries(ctrl)
			repo := repository.NewRewardRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			err := repo.Create(ctx, rw)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRewardRepository_Update(t *testing.T) {
	ctx := context.Background()
	rw, err := reward.NewReward(uuid.Nil, uuid.New(), "Free coffee", "", 100, time.Now())
	require.NoError(t, err)

	testCases := []struct {
		name          string
		rows          int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: one row updated", rows: 1},
		{name: "error: no row matched", rows: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnectionLost, expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardWriteQueries(ctrl)
			mockQueries.EXPECT().UpdateReward(ctx, gomock.Any(), gomock.Any()).Return(tc.rows, tc.queryErr)
			repo := repository.NewRewardRepository(mockQueries, &mockDBTX{})

			err := repo.Update(ctx, rw)
			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRewardRepository_FindForShare(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	t.Run("success: maps row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRewardWriteQueries(ctrl)
		mockQueries.EXPECT().GetRewardByIDForShare(ctx, gomock.Any(), id).Return(sqlc.Rewards{
			ID: id, BusinessID: uuid.New(), Name: "Free coffee", PointsCost: 100, Active: false, CreatedAt: now, UpdatedAt: now,
		}, nil)

		rw, err := repository.NewRewardRepository(mockQueries, &mockDBTX{}).FindForShare(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(100), rw.PointsCost())
		assert.ErrorIs(t, rw.CanBeRedeemed(), reward.ErrRewardInactive)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRewardWriteQueries(ctrl)
		mockQueries.EXPECT().GetRewardByIDForShare(ctx, gomock.Any(), id).Return(sqlc.Rewards{}, pgx.ErrNoRows)

		_, err := repository.NewRewardRepository(mockQueries, &mockDBTX{}).FindForShare(ctx, id)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
