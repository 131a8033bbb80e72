package booking

import (
	"strings"
	"unicode/utf8"

	"event-marketplace/internal/pkg/money"
)

const (
	MaxRequirementsLength = 5000
	MaxMessageLength      = 5000
)

type BudgetRange struct {
	min money.Money
	max money.Money
}

func NewBudgetRange(minCents, maxCents int64) (BudgetRange, error) {
	lo, err := money.New(minCents)
	if err != nil {
		return BudgetRange{}, err
	}
	hi, err := money.New(maxCents)
	if err != nil {
		return BudgetRange{}, err
	}
	if lo.Cents() > hi.Cents() {
		return BudgetRange{}, ErrInvalidBudgetRange
	}
	return BudgetRange{min: lo, max: hi}, nil
}

func (b BudgetRange) Min() money.Money { return b.min }
func (b BudgetRange) Max() money.Money { return b.max }

type Requirements string

func NewRequirements(s string) (Requirements, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrRequirementsRequired
	}
	if utf8.RuneCountInString(s) > MaxRequirementsLength {
		return "", ErrRequirementsTooLong
	}
	return Requirements(s), nil
}

func (r Requirements) String() string { return string(r) }
