package reward

import (
	"time"

	"loyalty-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRewardInactive = errs.New("reward is inactive")
	ErrRewardNotOwned = errs.New("reward belongs to another business")
)

type Reward struct {
	id          uuid.UUID
	businessID  uuid.UUID
	name        Name
	description string
	pointsCost  PointsCost
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReward creates an active reward. A nil id is replaced with a fresh one.
func NewReward(id, businessID uuid.UUID, name, description string, pointsCost int64, now time.Time) (*Reward, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	d, err := NewDescription(description)
	if err != nil {
		return nil, err
	}
	c, err := NewPointsCost(pointsCost)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Reward{
		id:          id,
		businessID:  businessID,
		name:        n,
		description: d,
		pointsCost:  c,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructReward(
	id, businessID uuid.UUID,
	name, description string,
	pointsCost int64,
	active bool,
	createdAt, updatedAt time.Time,
) *Reward {
	return &Reward{
		id:          id,
		businessID:  businessID,
		name:        Name{text: name},
		description: description,
		pointsCost:  PointsCost{value: pointsCost},
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the mutable fields. Only the owning business may call it.
func (r *Reward) Update(actorBusinessID uuid.UUID, name, description string, pointsCost int64, active bool, now time.Time) error {
	if err := r.checkOwner(actorBusinessID); err != nil {
		return err
	}
	n, err := NewName(name)
	if err != nil {
		return err
	}
	d, err := NewDescription(description)
	if err != nil {
		return err
	}
	c, err := NewPointsCost(pointsCost)
	if err != nil {
		return err
	}
	r.name = n
	r.description = d
	r.pointsCost = c
	r.active = active
	r.updatedAt = now
	return nil
}

func (r *Reward) SetActive(actorBusinessID uuid.UUID, active bool, now time.Time) error {
	if err := r.checkOwner(actorBusinessID); err != nil {
		return err
	}
	r.active = active
	r.updatedAt = now
	return nil
}

func (r *Reward) CanBeRedeemed() error {
	if !r.active {
		return ErrRewardInactive
	}
	return nil
}

func (r *Reward) checkOwner(actorBusinessID uuid.UUID) error {
	if r.businessID != actorBusinessID {
		return ErrRewardNotOwned
	}
	return nil
}

func (r *Reward) ID() uuid.UUID         { return r.id }
func (r *Reward) BusinessID() uuid.UUID { return r.businessID }
func (r *Reward) Name() Name            { return r.name }
func (r *Reward) Description() string   { return r.description }
func (r *Reward) PointsCost() int64     { return r.pointsCost.Value() }
func (r *Reward) IsActive() bool        { return r.active }
func (r *Reward) CreatedAt() time.Time  { return r.createdAt }
func (r *Reward) UpdatedAt() time.Time  { return r.updatedAt }
