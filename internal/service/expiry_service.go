package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// maxExpiryYear keeps expiry dates representable as DD/MM/YYYY
const maxExpiryYear = 9999

var hundred = decimal.NewFromInt(100)

// ExpiryInput is one consistent snapshot of the values driving the expiry date
type ExpiryInput struct {
	Payment      decimal.Decimal `json:"payment"`
	MonthlyFee   decimal.Decimal `json:"monthlyFee"`
	StartDate    string          `json:"startDate"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType string          `json:"discountType,omitempty"`
}

// ExpiryInputFromCustomer takes the expiry inputs from a customer record
func ExpiryInputFromCustomer(c *models.Customer) ExpiryInput {
	return ExpiryInput{
		Payment:      c.Payment,
		MonthlyFee:   c.MonthlyFee,
		StartDate:    c.StartDate,
		Discount:     c.Discount,
		DiscountType: c.DiscountType,
	}
}

// ExpiryResult is the outcome of an expiry calculation.
// Computed is false when payment, monthly fee or start date is missing,
// in which case the caller keeps its previous expiry date.
type ExpiryResult struct {
	Computed            bool            `json:"computed"`
	Months              int             `json:"months"`
	EffectiveMonthlyFee decimal.Decimal `json:"effectiveMonthlyFee"`
	ExpiryDate          string          `json:"expiryDate,omitempty"`
}

// ExpiryService derives expiry dates from payments
type ExpiryService interface {
	Calculate(in ExpiryInput) (ExpiryResult, error)
	EffectiveMonthlyFee(in ExpiryInput) (decimal.Decimal, error)
}

type expiryService struct{}

// NewExpiryService creates a new expiry service
func NewExpiryService() ExpiryService {
	return &expiryService{}
}

// Calculate computes the number of paid months and the resulting expiry date.
// It returns *models.DomainError or *models.InvalidDateError on bad input.
func (s *expiryService) Calculate(in ExpiryInput) (ExpiryResult, error) {
	if in.Payment.IsZero() || in.MonthlyFee.IsZero() || strings.TrimSpace(in.StartDate) == "" {
		return ExpiryResult{Computed: false}, nil
	}

	effective, err := s.EffectiveMonthlyFee(in)
	if err != nil {
		return ExpiryResult{}, err
	}

	monthsDec, err := paidMonths(in, effective)
	if err != nil {
		return ExpiryResult{}, err
	}
	maxMonths := decimal.NewFromInt(maxExpiryYear * 12)
	if monthsDec.GreaterThan(maxMonths) {
		return ExpiryResult{}, &models.DomainError{Reason: "payment covers more months than can be represented"}
	}
	months := int(monthsDec.IntPart())

	start, err := models.ParseDate(in.StartDate)
	if err != nil {
		return ExpiryResult{}, err
	}

	expiry := models.AddMonths(start, months)
	if expiry.Year() > maxExpiryYear {
		return ExpiryResult{}, &models.DomainError{Reason: "expiry date is out of range"}
	}

	return ExpiryResult{
		Computed:            true,
		Months:              months,
		EffectiveMonthlyFee: effective,
		ExpiryDate:          models.FormatDate(expiry),
	}, nil
}

// EffectiveMonthlyFee applies the discount to the monthly fee
func (s *expiryService) EffectiveMonthlyFee(in ExpiryInput) (decimal.Decimal, error) {
	if in.Payment.IsNegative() || in.MonthlyFee.IsNegative() || in.Discount.IsNegative() {
		return decimal.Zero, &models.DomainError{Reason: "payment, monthly fee and discount must not be negative"}
	}

	switch in.DiscountType {
	case "":
		return in.MonthlyFee, nil

	case models.DiscountTypePercentage:
		return in.MonthlyFee.Mul(decimal.NewFromInt(1).Sub(in.Discount.Div(hundred))), nil

	case models.DiscountTypeMonthly:
		return in.MonthlyFee.Sub(in.Discount), nil

	case models.DiscountTypeTotal:
		if in.MonthlyFee.IsZero() {
			return decimal.Zero, &models.DomainError{Reason: "monthly fee must be positive for a total discount"}
		}
		rawMonths := floorDiv(in.Payment, in.MonthlyFee)
		if rawMonths.IsZero() {
			return decimal.Zero, &models.DomainError{
				Reason: "total discount needs a payment of at least one monthly fee",
			}
		}
		return in.MonthlyFee.Sub(in.Discount.Div(rawMonths)), nil

	default:
		return decimal.Zero, &models.DomainError{Reason: fmt.Sprintf("unknown discount type %q", in.DiscountType)}
	}
}

// paidMonths counts whole months covered by the payment. A total discount is
// divided over the raw months without rounding, so the count is exact:
// floor(payment*raw / (fee*raw - discount)).
func paidMonths(in ExpiryInput, effective decimal.Decimal) (decimal.Decimal, error) {
	if in.DiscountType == models.DiscountTypeTotal {
		rawMonths := floorDiv(in.Payment, in.MonthlyFee)
		cost := in.MonthlyFee.Mul(rawMonths).Sub(in.Discount)
		if !cost.IsPositive() {
			return decimal.Zero, &models.DomainError{
				Reason: fmt.Sprintf("total discount %s covers the whole payment period", in.Discount.String()),
			}
		}
		return floorDiv(in.Payment.Mul(rawMonths), cost), nil
	}

	if !effective.IsPositive() {
		return decimal.Zero, &models.DomainError{
			Reason: fmt.Sprintf("effective monthly fee must be positive, got %s", effective.String()),
		}
	}
	return floorDiv(in.Payment, effective), nil
}

// floorDiv is the integer quotient of two non-negative decimals
func floorDiv(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, 0)
	return q
}
