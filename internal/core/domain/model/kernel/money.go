package kernel

import (
	"fmt"

	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount of the establishment's currency.
// It wraps shopspring/decimal so that item prices and order totals are exact:
// a total is always the precise sum of the snapshot prices that produced it,
// never a float approximation.
//
// The zero value is a valid zero amount. Money is immutable; arithmetic
// returns new values.
type Money struct {
	amount decimal.Decimal
}

// MoneyFromDecimal creates a Money from a decimal amount.
// Negative amounts are rejected.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "9.99" into a Money value.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return MoneyFromDecimal(amount)
}

// ZeroMoney returns a zero amount, the identity element for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Decimal returns the underlying decimal amount for persistence and encoding.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual reports whether two amounts are numerically equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal string form, e.g. "9.99".
func (m Money) String() string {
	return m.amount.String()
}
