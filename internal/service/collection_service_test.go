package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

func sampleCustomers() []*models.Customer {
	return []*models.Customer{
		{ID: "1", Name: "Νίκος Παπαδόπουλος", LicensePlate: "IKA-1234", ParkingSpace: "A1", Payment: dec("100"), ExpiryDate: "01/01/2025"},
		{ID: "2", Name: "anna smith", LicensePlate: "XYZ-9876", ParkingSpace: "B7", Payment: dec("25.5"), ExpiryDate: "15/03/2024"},
		{ID: "3", Name: "Bob Jones", LicensePlate: "abc-1111", ParkingSpace: "c12", Payment: dec("250"), ExpiryDate: "20/12/2024"},
	}
}

func ids(customers []*models.Customer) []string {
	out := make([]string, len(customers))
	for i, c := range customers {
		out[i] = c.ID
	}
	return out
}

func TestCollectionService_Filter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query keeps all in order", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "blank query keeps all", query: "   ", wantIDs: []string{"1", "2", "3"}},
		{name: "name ignores case", query: "ANNA", wantIDs: []string{"2"}},
		{name: "plate ignores case", query: "ABC", wantIDs: []string{"3"}},
		{name: "parking space", query: "b7", wantIDs: []string{"2"}},
		{name: "greek with accents", query: "ΝΊΚΟΣ", wantIDs: []string{"1"}},
		{name: "matches several", query: "1", wantIDs: []string{"1", "3"}},
		{name: "no match", query: "ZZZ-NOMATCH", wantIDs: []string{}},
	}

	svc := NewCollectionService("el")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(sampleCustomers(), tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestCollectionService_Filter_DoesNotAlias(t *testing.T) {
	svc := NewCollectionService("en")
	records := sampleCustomers()

	got := svc.Filter(records, "")
	got[0] = nil

	assert.NotNil(t, records[0])
}

func TestCollectionService_SortBy(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		order   string
		wantIDs []string
	}{
		{name: "date asc compares calendar values", field: "expiryDate", order: "asc", wantIDs: []string{"2", "3", "1"}},
		{name: "date desc", field: "expiryDate", order: "desc", wantIDs: []string{"1", "3", "2"}},
		{name: "money asc compares numbers", field: "payment", order: "asc", wantIDs: []string{"2", "1", "3"}},
		{name: "money desc", field: "payment", order: "DESC", wantIDs: []string{"3", "1", "2"}},
		{name: "text asc ignores case", field: "licensePlate", order: "", wantIDs: []string{"3", "1", "2"}},
		{name: "no field keeps order", field: "", order: "desc", wantIDs: []string{"1", "2", "3"}},
	}

	svc := NewCollectionService("en")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SortBy(sampleCustomers(), tt.field, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

func TestCollectionService_SortBy_ExpiryDates(t *testing.T) {
	records := []*models.Customer{
		{ExpiryDate: "01/01/2025"},
		{ExpiryDate: "15/03/2024"},
		{ExpiryDate: "20/12/2024"},
	}

	got, err := NewCollectionService("en").SortBy(records, "expiryDate", SortOrderAsc)
	require.NoError(t, err)

	dates := make([]string, len(got))
	for i, c := range got {
		dates[i] = c.ExpiryDate
	}
	assert.Equal(t, []string{"15/03/2024", "20/12/2024", "01/01/2025"}, dates)
}

func TestCollectionService_SortBy_Stable(t *testing.T) {
	records := []*models.Customer{
		{ID: "a", StartDate: "01/02/2024"},
		{ID: "b", StartDate: "01/01/2024"},
		{ID: "c", StartDate: "01/02/2024"},
		{ID: "d", StartDate: "01/01/2024"},
	}
	svc := NewCollectionService("en")

	asc, err := svc.SortBy(records, "startDate", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(asc))

	// Ties keep insertion order in both directions
	desc, err := svc.SortBy(records, "startDate", SortOrderDesc)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(desc))
}

func TestCollectionService_SortBy_MalformedDatesSortFirst(t *testing.T) {
	records := []*models.Customer{
		{ID: "ok", ExpiryDate: "01/01/2020"},
		{ID: "bad", ExpiryDate: "31/04/2024"},
		{ID: "empty", ExpiryDate: ""},
	}

	got, err := NewCollectionService("en").SortBy(records, "expiryDate", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "empty", "ok"}, ids(got))
}

func TestCollectionService_SortBy_Collation(t *testing.T) {
	records := []*models.Customer{
		{ID: "zeta", Name: "Ζωή"},
		{ID: "alpha", Name: "Άννα"},
		{ID: "beta", Name: "Βασίλης"},
	}

	got, err := NewCollectionService("el").SortBy(records, "name", SortOrderAsc)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "zeta"}, ids(got))
}

func TestCollectionService_SortBy_InvalidInput(t *testing.T) {
	svc := NewCollectionService("en")

	_, err := svc.SortBy(sampleCustomers(), "shoeSize", SortOrderAsc)
	assert.Error(t, err)

	_, err = svc.SortBy(sampleCustomers(), "name", "sideways")
	assert.Error(t, err)
}

func TestCollectionService_ToExportRows(t *testing.T) {
	svc := NewCollectionService("en")
	records := []*models.Customer{
		{Name: "Maria", LicensePlate: "IKA-1234", Payment: dec("120"), MonthlyFee: dec("60.5"), ExpiryDate: "01/03/2024"},
	}

	rows, err := svc.ToExportRows(records, []string{"name", "payment", "monthlyFee", "expiryDate", "discount"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Maria", "120.00", "60.50", "01/03/2024", "0.00"}}, rows)

	rows, err = svc.ToExportRows(nil, []string{"name"})
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.ToExportRows(records, []string{"name", "shoeSize"})
	assert.Error(t, err)

	_, err = svc.ToExportRows(records, nil)
	assert.Error(t, err)
}

func TestCollectionService_ExportRowRoundTrip(t *testing.T) {
	svc := NewCollectionService("el")
	original := &models.Customer{
		Name:          "Νίκος",
		CarType:       "Toyota Yaris",
		CarSize:       models.CarSizeSmall,
		LicensePlate:  "IKA-1234",
		Payment:       dec("180"),
		MonthlyFee:    dec("60"),
		Discount:      dec("5"),
		DiscountType:  models.DiscountTypeMonthly,
		ParkingSpace:  "A1",
		StartDate:     "01/02/2024",
		PaymentDate:   "01/02/2024",
		ExpiryDate:    "01/05/2024",
		PaymentMethod: models.PaymentMethodVisa,
		KeyID:         "K-17",
		Notes:         "night shift",
		Phone:         "+30 210 0000000",
		Email:         "nikos@example.com",
	}

	rows, err := svc.ToExportRows([]*models.Customer{original}, DefaultColumns)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	parsed, err := svc.ParseExportRow(DefaultColumns, rows[0])
	require.NoError(t, err)

	again, err := svc.ToExportRows([]*models.Customer{parsed}, DefaultColumns)
	require.NoError(t, err)
	assert.Equal(t, rows, again)
	assert.Equal(t, original.Name, parsed.Name)
	assert.True(t, original.Payment.Equal(parsed.Payment))
}

func TestCollectionService_ParseExportRow_Errors(t *testing.T) {
	svc := NewCollectionService("en")

	_, err := svc.ParseExportRow([]string{"name", "payment"}, []string{"Maria"})
	assert.Error(t, err)

	_, err = svc.ParseExportRow([]string{"name", "payment"}, []string{"Maria", "a lot"})
	assert.Error(t, err)

	c, err := svc.ParseExportRow([]string{"name", "payment"}, []string{"Maria", ""})
	require.NoError(t, err)
	assert.True(t, c.Payment.IsZero())
}
