package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Car size constants
const (
	CarSizeSmall  = "small"
	CarSizeMedium = "medium"
	CarSizeBig    = "big"
)

// Payment method constants
const (
	PaymentMethodCash  = "cash"
	PaymentMethodVisa  = "visa"
	PaymentMethodIris  = "iris"
	PaymentMethodBank  = "bank"
	PaymentMethodOther = "other"
)

// Discount type constants. An empty discount type means no discount.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeMonthly    = "monthly"
	DiscountTypeTotal      = "total"
)

// Customer represents a parking customer record
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CarType       string          `json:"carType"`
	CarSize       string          `json:"carSize"`
	LicensePlate  string          `json:"licensePlate"`
	Payment       decimal.Decimal `json:"payment"`
	MonthlyFee    decimal.Decimal `json:"monthlyFee"`
	Discount      decimal.Decimal `json:"discount"`
	DiscountType  string          `json:"discountType,omitempty"`
	ParkingSpace  string          `json:"parkingSpace"`
	StartDate     string          `json:"startDate"`
	PaymentDate   string          `json:"paymentDate"`
	ExpiryDate    string          `json:"expiryDate"`
	PaymentMethod string          `json:"paymentMethod"`
	KeyID         string          `json:"keyId"`
	Notes         string          `json:"notes"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
}

// CustomerQuery holds search and ordering options for listing customers
type CustomerQuery struct {
	Search string
	SortBy string
	Order  string
}

// ApplyDefaults fills enum fields left empty by the form
func (c *Customer) ApplyDefaults() {
	if c.CarSize == "" {
		c.CarSize = CarSizeMedium
	}
	if c.PaymentMethod == "" {
		c.PaymentMethod = PaymentMethodCash
	}
}

// Validate performs validation on customer data
func (c *Customer) Validate() error {
	if c.Payment.IsNegative() {
		return ErrInvalidInput("payment cannot be negative")
	}
	if c.MonthlyFee.IsNegative() {
		return ErrInvalidInput("monthlyFee cannot be negative")
	}
	if c.Discount.IsNegative() {
		return ErrInvalidInput("discount cannot be negative")
	}
	if !IsValidCarSize(c.CarSize) {
		return ErrInvalidInput(fmt.Sprintf("invalid carSize: %s (must be 'small', 'medium' or 'big')", c.CarSize))
	}
	if !IsValidPaymentMethod(c.PaymentMethod) {
		return ErrInvalidInput(fmt.Sprintf("invalid paymentMethod: %s", c.PaymentMethod))
	}
	if c.DiscountType != "" && !IsValidDiscountType(c.DiscountType) {
		return ErrInvalidInput(fmt.Sprintf("invalid discountType: %s (must be 'percentage', 'monthly' or 'total')", c.DiscountType))
	}
	if c.PaymentDate != "" {
		if _, err := ParseDate(c.PaymentDate); err != nil {
			return ErrUnprocessable(err)
		}
	}
	return nil
}

// IsValidCarSize checks if the car size is valid
func IsValidCarSize(size string) bool {
	switch size {
	case CarSizeSmall, CarSizeMedium, CarSizeBig:
		return true
	default:
		return false
	}
}

// IsValidPaymentMethod checks if the payment method is valid
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodVisa, PaymentMethodIris, PaymentMethodBank, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// IsValidDiscountType checks if the discount type is valid
func IsValidDiscountType(discountType string) bool {
	switch discountType {
	case DiscountTypePercentage, DiscountTypeMonthly, DiscountTypeTotal:
		return true
	default:
		return false
	}
}
