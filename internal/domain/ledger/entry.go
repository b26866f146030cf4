package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPoints       = errors.New("points must be a positive amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadySettled      = errors.New("entry already settled")
)

// MaxEntryPoints bounds a single entry so running sums stay far from overflow.
const MaxEntryPoints = 1_000_000

// Entry is one immutable credit or debit in a partition. seq and balanceAfter
// are assigned while the partition's serialization point is held.
type Entry struct {
	id             uuid.UUID
	seq            int64
	partition      Partition
	delta          int64
	kind           Kind
	reason         Reason
	balanceAfter   int64
	settled        bool
	idempotencyKey IdempotencyKey
	note           string
	createdAt      time.Time
}

func NewCredit(p Partition, points int64, reason Reason, key IdempotencyKey, note string, now time.Time) (*Entry, error) {
	return newEntry(p, points, KindCredit, reason, key, note, now)
}

func NewDebit(p Partition, points int64, reason Reason, key IdempotencyKey, note string, now time.Time) (*Entry, error) {
	return newEntry(p, points, KindDebit, reason, key, note, now)
}

// NewAdjustment builds a bonus adjustment; the sign of delta picks the kind.
func NewAdjustment(p Partition, delta int64, key IdempotencyKey, note string, now time.Time) (*Entry, error) {
	if delta < 0 {
		return NewDebit(p, -delta, ReasonBonusAdjustment, key, note, now)
	}
	return NewCredit(p, delta, ReasonBonusAdjustment, key, note, now)
}

func newEntry(p Partition, points int64, kind Kind, reason Reason, key IdempotencyKey, note string, now time.Time) (*Entry, error) {
	if p.CustomerID == uuid.Nil || p.BusinessID == uuid.Nil {
		return nil, ErrInvalidPartition
	}
	if points <= 0 || points > MaxEntryPoints {
		return nil, ErrInvalidPoints
	}
	if !reason.IsValid() {
		return nil, ErrInvalidReason
	}
	if key == "" {
		return nil, ErrInvalidIdempotencyKey
	}

	delta := points
	if kind == KindDebit {
		delta = -points
	}

	return &Entry{
		id:             uuid.New(),
		partition:      p,
		delta:          delta,
		kind:           kind,
		reason:         reason,
		idempotencyKey: key,
		note:           note,
		createdAt:      now,
	}, nil
}

func ReconstructEntry(
	id uuid.UUID,
	seq int64,
	p Partition,
	delta int64,
	kind Kind,
	reason Reason,
	balanceAfter int64,
	key IdempotencyKey,
	note string,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:             id,
		seq:            seq,
		partition:      p,
		delta:          delta,
		kind:           kind,
		reason:         reason,
		balanceAfter:   balanceAfter,
		settled:        true,
		idempotencyKey: key,
		note:           note,
		createdAt:      createdAt,
	}
}

// Settle returns a copy of the entry applied to the current partition
// balance. A debit that would take the balance below zero is rejected.
func (e *Entry) Settle(balanceBefore int64) (*Entry, error) {
	if e.settled {
		return nil, ErrAlreadySettled
	}
	after := balanceBefore + e.delta
	if after < 0 {
		return nil, ErrInsufficientBalance
	}
	settled := *e
	settled.balanceAfter = after
	settled.settled = true
	return &settled, nil
}

// WithSeq returns a copy carrying the position the store assigned.
func (e *Entry) WithSeq(seq int64) *Entry {
	c := *e
	c.seq = seq
	return &c
}

func (e *Entry) Magnitude() int64 {
	if e.delta < 0 {
		return -e.delta
	}
	return e.delta
}

func (e *Entry) IsCredit() bool { return e.kind == KindCredit }
func (e *Entry) IsDebit() bool  { return e.kind == KindDebit }

func (e *Entry) ID() uuid.UUID                  { return e.id }
func (e *Entry) Seq() int64                     { return e.seq }
func (e *Entry) Partition() Partition           { return e.partition }
func (e *Entry) CustomerID() uuid.UUID          { return e.partition.CustomerID }
func (e *Entry) BusinessID() uuid.UUID          { return e.partition.BusinessID }
func (e *Entry) Delta() int64                   { return e.delta }
func (e *Entry) Kind() Kind                     { return e.kind }
func (e *Entry) Reason() Reason                 { return e.reason }
func (e *Entry) BalanceAfter() int64            { return e.balanceAfter }
func (e *Entry) IsSettled() bool                { return e.settled }
func (e *Entry) IdempotencyKey() IdempotencyKey { return e.idempotencyKey }
func (e *Entry) Note() string                   { return e.note }
func (e *Entry) CreatedAt() time.Time           { return e.createdAt }

// Sum folds deltas; the balance of a partition is Sum over all its entries.
func Sum(entries []*Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.delta
	}
	return total
}
