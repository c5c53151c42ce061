package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// ErrCurrencyMismatch is returned when combining amounts in different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// AmountScale is the number of decimal places an amount may carry.
const AmountScale = 2

// MaxAmount is the largest amount that fits the numeric(12,2) columns amounts are stored in.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidateAmount accepts 0 <= v <= MaxAmount with at most AmountScale decimal places.
func ValidateAmount(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
	}
	if !v.Equal(v.Truncate(AmountScale)) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s has more than %d decimal places", v, AmountScale))
	}
	if v.GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError(name, v, decimal.Zero, MaxAmount)
	}
	return nil
}

// Money is an amount in a single ISO 4217 currency. Amounts are decimals so that
// escrow balances never accumulate floating point error.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates the currency code and the amount (see ValidateAmount). Zero is
// allowed because order totals may be absent.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NormalizeCurrency upper-cases and trims a user supplied currency code.
func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Sub subtracts other; the result may not go negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// GreaterThan compares amounts of the same currency.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.sameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

func (m Money) sameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if err := ValidateAmount("amount", amount); err != nil {
		return err
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if !currencyPattern.MatchString(currency) {
		return errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	m.currency = currency
	return nil
}
