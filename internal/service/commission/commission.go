// Package commission is the pure calculator behind affiliate commissions.
// All results are rounded half up to two decimal places, once per
// operation, so repeated computation over the same inputs is bit-stable.
package commission

import (
	"errors"

	"github.com/coursepay/coursepay/pkg/money"
)

// Tolerance within which two independently computed commissions are
// considered the same amount.
const Tolerance = 0.01

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidRate    = errors.New("commission rate must be between 0 and 100")
)

type Item struct {
	Amount float64
	Rate   float64
}

// Calculate returns the commission owed on amount at rate percent.
// A zero amount always yields a zero commission, whatever the rate.
func Calculate(amount, rate float64) (float64, error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	if rate < 0 || rate > 100 {
		return 0, ErrInvalidRate
	}
	if amount == 0 {
		return 0, nil
	}
	return money.Percent(amount, rate), nil
}

// Validate reports whether claimed matches the calculator's own result for
// (amount, rate) within Tolerance.
func Validate(amount, rate, claimed float64) bool {
	expected, err := Calculate(amount, rate)
	if err != nil {
		return false
	}
	return money.Equal(expected, claimed, Tolerance)
}

// Total sums per-item commissions. Each item is rounded individually
// before summation, matching how entries are persisted one by one.
func Total(items []Item) (float64, error) {
	var sum float64
	for _, item := range items {
		c, err := Calculate(item.Amount, item.Rate)
		if err != nil {
			return 0, err
		}
		sum = money.Add(sum, c)
	}
	return money.Round(sum), nil
}
