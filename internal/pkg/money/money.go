package money

import (
	"math"

	"event-marketplace/internal/pkg/errs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrNegativeAmount = errs.Mark(errs.New("amount must not be negative"), errs.ErrValidation)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func New(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(o Money) Money {
	return Money{cents: m.cents + o.cents}
}

func (m Money) Sub(o Money) Money {
	return Money{cents: m.cents - o.cents}
}

// Percent returns p% of m rounded half away from zero to the cent.
func (m Money) Percent(p int64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * float64(p) / 100))}
}

// Split returns m/n rounded to the cent. n <= 0 yields zero.
func (m Money) Split(n int) Money {
	if n <= 0 {
		return Zero()
	}
	return Money{cents: int64(math.Round(float64(m.cents) / float64(n)))}
}

func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// Format renders m as US dollars, e.g. $1,000.00.
func (m Money) Format() string {
	return message.NewPrinter(language.AmericanEnglish).Sprintf("$%.2f", m.Float())
}
