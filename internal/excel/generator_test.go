package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/apper-api/internal/model"
)

func TestGenerate_SheetsPerMarket(t *testing.T) {
	name := "EQS 450+"
	gross := 72000.0
	calcs := []model.Calculation{
		{ID: 1, Market: "fr", FinancialCode: "mock_fr_1", CalculatedRate: 500, Currency: "EUR", CreatedAt: time.Now()},
		{ID: 2, Market: "de", FinancialCode: "mock_de_2", CalculatedRate: 2000, Currency: "EUR", VehicleName: &name, GrossListPrice: &gross},
		{ID: 3, Market: "de", FinancialCode: "mock_de_3", CalculatedRate: 1000, Currency: "EUR"},
	}

	content, err := NewGenerator().Generate(calcs)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Summary", "Market DE", "Market FR"}, file.GetSheetList())

	total, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	avg, err := file.GetCellValue("Summary", "C5")
	require.NoError(t, err)
	assert.Equal(t, "1500.00", avg)

	vehicle, err := file.GetCellValue("Market DE", "D2")
	require.NoError(t, err)
	assert.Equal(t, "EQS 450+", vehicle)

	price, err := file.GetCellValue("Market DE", "H2")
	require.NoError(t, err)
	assert.Equal(t, "72000.00", price)
}

func TestGenerate_Empty(t *testing.T) {
	content, err := NewGenerator().Generate(nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, []string{"Summary"}, file.GetSheetList())
}

func TestBuildSheetName_Unique(t *testing.T) {
	used := map[string]struct{}{"Market DE": {}}
	assert.Equal(t, "Market DE-2", buildSheetName("de", used))
	assert.Equal(t, "Sheet", sanitizeSheetName("  "))
	assert.Equal(t, "Market -", sanitizeSheetName("Market /"))
}
