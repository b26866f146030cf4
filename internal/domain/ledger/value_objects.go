package ledger

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidIdempotencyKey = errors.New("idempotency key must be 1-255 characters")
	ErrInvalidPartition      = errors.New("partition requires customer and business ids")
	ErrInvalidKind           = errors.New("invalid entry kind")
	ErrInvalidReason         = errors.New("invalid entry reason")
)

const maxIdempotencyKeyLen = 255

type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindCredit, KindDebit:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

type Reason string

const (
	ReasonCheckIn         Reason = "check_in"
	ReasonRedemption      Reason = "redemption"
	ReasonBonusAdjustment Reason = "bonus_adjustment"
)

func (r Reason) String() string { return string(r) }

func (r Reason) IsValid() bool {
	switch r {
	case ReasonCheckIn, ReasonRedemption, ReasonBonusAdjustment:
		return true
	default:
		return false
	}
}

func NewReason(s string) (Reason, error) {
	r := Reason(s)
	if !r.IsValid() {
		return "", ErrInvalidReason
	}
	return r, nil
}

// Partition is the unit of serialization: all entries of one customer at one business.
type Partition struct {
	CustomerID uuid.UUID
	BusinessID uuid.UUID
}

func NewPartition(customerID, businessID uuid.UUID) (Partition, error) {
	if customerID == uuid.Nil || businessID == uuid.Nil {
		return Partition{}, ErrInvalidPartition
	}
	return Partition{CustomerID: customerID, BusinessID: businessID}, nil
}

// Key is stable across processes and is used for advisory locks and cache keys.
func (p Partition) Key() string {
	return p.CustomerID.String() + ":" + p.BusinessID.String()
}

type IdempotencyKey string

func NewIdempotencyKey(s string) (IdempotencyKey, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxIdempotencyKeyLen {
		return "", ErrInvalidIdempotencyKey
	}
	return IdempotencyKey(s), nil
}

func (k IdempotencyKey) String() string { return string(k) }
