//go:build unit

package reward_test

import (
	"strings"
	"testing"
	"time"

	"loyalty-ledger/internal/domain/reward"
	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReward(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		r, err := reward.NewReward(uuid.Nil, businessID, "  Free Coffee ", "Any size", 100, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, businessID, r.BusinessID())
		assert.Equal(t, "Free Coffee", r.Name().String())
		assert.Equal(t, int64(100), r.PointsCost())
		assert.True(t, r.IsActive())
		assert.Equal(t, r.CreatedAt(), r.UpdatedAt())
	})

	t.Run("keeps given id", func(t *testing.T) {
		id := uuid.New()
		r, err := reward.NewReward(id, businessID, "Pastry", "", 80, now)
		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
	})

	testCases := []struct {
		name        string
		rewardName  string
		description string
		cost        int64
		errIs       error
	}{
		{name: "zero cost", rewardName: "Coffee", cost: 0, errIs: reward.ErrInvalidPointsCost},
		{name: "negative cost", rewardName: "Coffee", cost: -10, errIs: reward.ErrInvalidPointsCost},
		{name: "cost above maximum", rewardName: "Coffee", cost: reward.MaxPointsCost + 1, errIs: reward.ErrInvalidPointsCost},
		{name: "minimum cost", rewardName: "Coffee", cost: 1},
		{name: "empty name", rewardName: "   ", cost: 10, errIs: reward.ErrEmptyName},
		{name: "name too long", rewardName: strings.Repeat("a", reward.MaxNameLength+1), cost: 10, errIs: reward.ErrNameTooLong},
		{name: "description too long", rewardName: "Coffee", description: strings.Repeat("d", reward.MaxDescriptionLength+1), cost: 10, errIs: reward.ErrDescriptionTooLong},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := reward.NewReward(uuid.Nil, businessID, tc.rewardName, tc.description, tc.cost, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, r)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestReward_Mutations(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)
	owner := uuid.New()
	other := uuid.New()

	newReward := func(t *testing.T) *reward.Reward {
		t.Helper()
		r, err := reward.NewReward(uuid.Nil, owner, "Coffee", "", 100, created)
		require.NoError(t, err)
		return r
	}

	t.Run("owner updates fields", func(t *testing.T) {
		r := newReward(t)
		require.NoError(t, r.Update(owner, "Large Coffee", "16oz", 150, true, later))

		assert.Equal(t, "Large Coffee", r.Name().String())
		assert.Equal(t, "16oz", r.Description())
		assert.Equal(t, int64(150), r.PointsCost())
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, created, r.CreatedAt())
	})

	t.Run("other business cannot update", func(t *testing.T) {
		r := newReward(t)
		err := r.Update(other, "Stolen", "", 1, true, later)
		assert.True(t, errs.Is(err, reward.ErrRewardNotOwned))
		assert.Equal(t, int64(100), r.PointsCost())
	})

	t.Run("invalid update leaves reward unchanged", func(t *testing.T) {
		r := newReward(t)
		err := r.Update(owner, "Coffee", "", 0, true, later)
		assert.ErrorIs(t, err, reward.ErrInvalidPointsCost)
		assert.Equal(t, int64(100), r.PointsCost())
		assert.Equal(t, created, r.UpdatedAt())
	})

	t.Run("deactivated reward cannot be redeemed", func(t *testing.T) {
		r := newReward(t)
		require.NoError(t, r.CanBeRedeemed())

		require.NoError(t, r.SetActive(owner, false, later))
		assert.False(t, r.IsActive())
		assert.True(t, errs.Is(r.CanBeRedeemed(), reward.ErrRewardInactive))

		require.NoError(t, r.SetActive(owner, true, later))
		assert.NoError(t, r.CanBeRedeemed())
	})

	t.Run("other business cannot toggle", func(t *testing.T) {
		r := newReward(t)
		err := r.SetActive(other, false, later)
		assert.True(t, errs.Is(err, reward.ErrRewardNotOwned))
		assert.True(t, r.IsActive())
	})
}
