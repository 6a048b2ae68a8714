package service

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// Sort order constants
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// moneyPlaces is the number of decimals used for money cells
const moneyPlaces = 2

type fieldKind int

const (
	kindText fieldKind = iota
	kindMoney
	kindDate
)

// customerField describes how a column is read from and written to a record
type customerField struct {
	kind  fieldKind
	text  func(c *models.Customer) string
	money func(c *models.Customer) decimal.Decimal
	set   func(c *models.Customer, value string) error
}

func textField(get func(c *models.Customer) string, set func(c *models.Customer, v string)) customerField {
	return customerField{
		kind: kindText,
		text: get,
		set: func(c *models.Customer, v string) error {
			set(c, v)
			return nil
		},
	}
}

func dateField(get func(c *models.Customer) string, set func(c *models.Customer, v string)) customerField {
	f := textField(get, set)
	f.kind = kindDate
	return f
}

func moneyField(get func(c *models.Customer) decimal.Decimal, set func(c *models.Customer, v decimal.Decimal)) customerField {
	return customerField{
		kind:  kindMoney,
		money: get,
		text: func(c *models.Customer) string {
			return get(c).StringFixed(moneyPlaces)
		},
		set: func(c *models.Customer, v string) error {
			s := strings.TrimSpace(v)
			if s == "" {
				set(c, decimal.Zero)
				return nil
			}
			d, err := decimal.NewFromString(s)
			if err != nil {
				return fmt.Errorf("invalid amount %q", v)
			}
			set(c, d)
			return nil
		},
	}
}

var customerFields = map[string]customerField{
	"name": textField(
		func(c *models.Customer) string { return c.Name },
		func(c *models.Customer, v string) { c.Name = v }),
	"licensePlate": textField(
		func(c *models.Customer) string { return c.LicensePlate },
		func(c *models.Customer, v string) { c.LicensePlate = v }),
	"carType": textField(
		func(c *models.Customer) string { return c.CarType },
		func(c *models.Customer, v string) { c.CarType = v }),
	"carSize": textField(
		func(c *models.Customer) string { return c.CarSize },
		func(c *models.Customer, v string) { c.CarSize = v }),
	"parkingSpace": textField(
		func(c *models.Customer) string { return c.ParkingSpace },
		func(c *models.Customer, v string) { c.ParkingSpace = v }),
	"payment": moneyField(
		func(c *models.Customer) decimal.Decimal { return c.Payment },
		func(c *models.Customer, v decimal.Decimal) { c.Payment = v }),
	"monthlyFee": moneyField(
		func(c *models.Customer) decimal.Decimal { return c.MonthlyFee },
		func(c *models.Customer, v decimal.Decimal) { c.MonthlyFee = v }),
	"discount": moneyField(
		func(c *models.Customer) decimal.Decimal { return c.Discount },
		func(c *models.Customer, v decimal.Decimal) { c.Discount = v }),
	"discountType": textField(
		func(c *models.Customer) string { return c.DiscountType },
		func(c *models.Customer, v string) { c.DiscountType = v }),
	"startDate": dateField(
		func(c *models.Customer) string { return c.StartDate },
		func(c *models.Customer, v string) { c.StartDate = v }),
	"paymentDate": dateField(
		func(c *models.Customer) string { return c.PaymentDate },
		func(c *models.Customer, v string) { c.PaymentDate = v }),
	"expiryDate": dateField(
		func(c *models.Customer) string { return c.ExpiryDate },
		func(c *models.Customer, v string) { c.ExpiryDate = v }),
	"paymentMethod": textField(
		func(c *models.Customer) string { return c.PaymentMethod },
		func(c *models.Customer, v string) { c.PaymentMethod = v }),
	"keyId": textField(
		func(c *models.Customer) string { return c.KeyID },
		func(c *models.Customer, v string) { c.KeyID = v }),
	"phone": textField(
		func(c *models.Customer) string { return c.Phone },
		func(c *models.Customer, v string) { c.Phone = v }),
	"email": textField(
		func(c *models.Customer) string { return c.Email },
		func(c *models.Customer, v string) { c.Email = v }),
	"notes": textField(
		func(c *models.Customer) string { return c.Notes },
		func(c *models.Customer, v string) { c.Notes = v }),
}

// DefaultColumns is the column order used when the caller supplies none
var DefaultColumns = []string{
	"name", "licensePlate", "carType", "carSize", "parkingSpace",
	"payment", "monthlyFee", "discount", "discountType",
	"startDate", "paymentDate", "expiryDate",
	"paymentMethod", "keyId", "phone", "email", "notes",
}

// IsValidColumn checks if key names a customer column
func IsValidColumn(key string) bool {
	_, ok := customerFields[key]
	return ok
}

// CollectionService filters, sorts and projects customer lists
type CollectionService interface {
	Filter(records []*models.Customer, query string) []*models.Customer
	SortBy(records []*models.Customer, field, order string) ([]*models.Customer, error)
	ToExportRows(records []*models.Customer, columns []string) ([][]string, error)
	ParseExportRow(columns []string, row []string) (*models.Customer, error)
}

type collectionService struct {
	tag language.Tag
}

// NewCollectionService creates a collection service collating text for lang
func NewCollectionService(lang string) CollectionService {
	return &collectionService{tag: language.Make(lang)}
}

// Filter keeps records whose name, license plate or parking space contains
// query, ignoring case. An empty query keeps every record.
func (s *collectionService) Filter(records []*models.Customer, query string) []*models.Customer {
	q := strings.TrimSpace(query)
	if q == "" {
		return slices.Clone(records)
	}

	// Casers carry state, so one per call.
	fold := cases.Fold()
	needle := fold.String(q)

	result := []*models.Customer{}
	for _, c := range records {
		if strings.Contains(fold.String(c.Name), needle) ||
			strings.Contains(fold.String(c.LicensePlate), needle) ||
			strings.Contains(fold.String(c.ParkingSpace), needle) {
			result = append(result, c)
		}
	}

	return result
}

type sortKey struct {
	customer *models.Customer
	text     string
	money    decimal.Decimal
	date     time.Time
}

// SortBy returns a stably sorted copy of records.
// Malformed dates sort as the earliest possible date.
func (s *collectionService) SortBy(records []*models.Customer, field, order string) ([]*models.Customer, error) {
	if field == "" {
		return slices.Clone(records), nil
	}

	f, ok := customerFields[field]
	if !ok {
		return nil, models.ErrInvalidInput(fmt.Sprintf("unknown sort field: %s", field))
	}

	sign := 1
	switch strings.ToLower(order) {
	case "", SortOrderAsc:
	case SortOrderDesc:
		sign = -1
	default:
		return nil, models.ErrInvalidInput(fmt.Sprintf("invalid sort order: %s (must be 'asc' or 'desc')", order))
	}

	keys := make([]sortKey, len(records))
	for i, c := range records {
		k := sortKey{customer: c}
		switch f.kind {
		case kindMoney:
			k.money = f.money(c)
		case kindDate:
			if t, err := models.ParseDate(f.text(c)); err == nil {
				k.date = t
			}
		default:
			k.text = f.text(c)
		}
		keys[i] = k
	}

	collator := collate.New(s.tag)
	slices.SortStableFunc(keys, func(a, b sortKey) int {
		var c int
		switch f.kind {
		case kindMoney:
			c = a.money.Cmp(b.money)
		case kindDate:
			c = a.date.Compare(b.date)
		default:
			c = collator.CompareString(a.text, b.text)
		}
		return sign * c
	})

	sorted := make([]*models.Customer, len(keys))
	for i, k := range keys {
		sorted[i] = k.customer
	}

	return sorted, nil
}

// ToExportRows projects each record to its display cells in column order
func (s *collectionService) ToExportRows(records []*models.Customer, columns []string) ([][]string, error) {
	fields, err := resolveColumns(columns)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, c := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = f.text(c)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseExportRow maps a row produced by ToExportRows back to a record
func (s *collectionService) ParseExportRow(columns []string, row []string) (*models.Customer, error) {
	fields, err := resolveColumns(columns)
	if err != nil {
		return nil, err
	}
	if len(row) != len(fields) {
		return nil, models.ErrInvalidInput(
			fmt.Sprintf("row has %d cells, expected %d", len(row), len(fields)),
		)
	}

	customer := &models.Customer{}
	for i, f := range fields {
		if err := f.set(customer, row[i]); err != nil {
			return nil, models.ErrInvalidInput(fmt.Sprintf("column %s: %s", columns[i], err.Error()))
		}
	}

	return customer, nil
}

func resolveColumns(columns []string) ([]customerField, error) {
	if len(columns) == 0 {
		return nil, models.ErrInvalidInput("at least one column is required")
	}

	fields := make([]customerField, len(columns))
	for i, col := range columns {
		f, ok := customerFields[col]
		if !ok {
			return nil, models.ErrInvalidInput(fmt.Sprintf("unknown column: %s", col))
		}
		fields[i] = f
	}

	return fields, nil
}
