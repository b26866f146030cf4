package reward

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
	MaxPointsCost        = 1_000_000
)

var (
	ErrInvalidPointsCost  = errors.New("points cost must be a positive integer")
	ErrEmptyName          = errors.New("reward name cannot be empty")
	ErrNameTooLong        = errors.New("reward name is too long")
	ErrDescriptionTooLong = errors.New("reward description is too long")
)

type PointsCost struct {
	value int64
}

func NewPointsCost(v int64) (PointsCost, error) {
	if v <= 0 || v > MaxPointsCost {
		return PointsCost{}, ErrInvalidPointsCost
	}
	return PointsCost{value: v}, nil
}

func (c PointsCost) Value() int64 { return c.value }

type Name struct {
	text string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(t) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{text: t}, nil
}

func (n Name) String() string { return n.text }

func NewDescription(s string) (string, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return t, nil
}
