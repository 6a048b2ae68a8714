package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

func workbook(t *testing.T, headers []string, rows [][]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, export.NewXLSXRenderer().Render(&buf, export.Table{Title: "Customers", Headers: headers, Rows: rows}))
	return bytes.NewReader(buf.Bytes())
}

func TestImportService_Import(t *testing.T) {
	customerSvc, collectionSvc := newTestCustomerService()
	svc := NewImportService(customerSvc, collectionSvc, testLogger())

	// Mixed header styles: Greek label, English label, raw key and an unknown column
	headers := []string{"Όνομα", "License Plate", "payment", "monthlyFee", "startDate", "Comments"}
	rows := [][]string{
		{"Maria", "IKA-1234", "120.00", "60.00", "01/01/2024", "ignored"},
		{"", "", "", "", "", ""},
		{"Nikos", "XYZ-9876", "60", "60", "31/04/2024", ""},
		{"Eleni", "ABC-1111", "lots", "60", "01/01/2024", ""},
		{"Kostas", "KKK-2222"},
	}

	result, err := svc.Import(context.Background(), workbook(t, headers, rows))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 4, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "31/04/2024")
	assert.Equal(t, 5, result.Errors[1].Row)
	assert.Contains(t, result.Errors[1].Message, "payment")

	list, err := customerSvc.List(context.Background(), models.CustomerQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maria", list[0].Name)
	assert.Equal(t, "01/03/2024", list[0].ExpiryDate, "expiry is recomputed on import")
	assert.Equal(t, "Kostas", list[1].Name)
	assert.Empty(t, list[1].ExpiryDate)
}

func TestImportService_Import_ExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	exportSvc, _ := newTestExportService(t, nil)

	file, err := exportSvc.Render(ctx, &ExportRequest{Format: models.ExportFormatXLSX})
	require.NoError(t, err)

	customerSvc, collectionSvc := newTestCustomerService()
	svc := NewImportService(customerSvc, collectionSvc, testLogger())

	result, err := svc.Import(ctx, bytes.NewReader(file.Data))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Failed)

	list, err := customerSvc.List(ctx, models.CustomerQuery{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maria", list[0].Name)
	assert.Equal(t, "01/03/2024", list[0].ExpiryDate)
	assert.True(t, dec("120").Equal(list[0].Payment))
}

func TestImportService_Import_BadWorkbook(t *testing.T) {
	customerSvc, collectionSvc := newTestCustomerService()
	svc := NewImportService(customerSvc, collectionSvc, testLogger())

	_, err := svc.Import(context.Background(), strings.NewReader("not a workbook"))
	assert.Equal(t, "INVALID_INPUT", appErrorCode(t, err))

	_, err = svc.Import(context.Background(), workbook(t, []string{"Colour", "Size"}, nil))
	assert.Equal(t, "INVALID_INPUT", appErrorCode(t, err))

	_, err = svc.Import(context.Background(), workbook(t, []string{"name", "Name"}, nil))
	assert.Equal(t, "INVALID_INPUT", appErrorCode(t, err))
}
