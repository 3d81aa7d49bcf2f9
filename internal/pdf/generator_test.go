package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/apper-api/internal/model"
)

func TestGenerate_ProducesPDF(t *testing.T) {
	name := "GLC 300 Zürich Edition"
	condition := model.VehicleConditionNew
	gross := 72000.0
	requestID := "req-1"

	calc := model.Calculation{
		ID:               7,
		Market:           "de",
		VehicleName:      &name,
		VehicleCondition: &condition,
		GrossListPrice:   &gross,
		Currency:         "EUR",
		CalculatedRate:   2000,
		FinancialCode:    "mock_de_1712345678.5",
		RequestID:        &requestID,
		CreatedAt:        time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
	}
	resp := &model.CalculationResponse{
		Output: &model.Output{
			WidgetTitle: "Mercedes-Benz Bank | Calculator [DE]",
			Containers: []model.OutputContainer{{
				ID: "output",
				Items: []model.FinancingResultRow{
					{ID: "monthlyRate", Label: "Monthly Rate", Value: "2000.00 EUR"},
					{ID: "term", Label: "Term", Value: "36 months"},
				},
			}},
		},
		Message: "Calculation successful (mock)",
	}

	content, err := NewGenerator().Generate(calc, resp)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestGenerate_WithoutStoredResponse(t *testing.T) {
	content, err := NewGenerator().Generate(model.Calculation{ID: 1, Currency: "EUR", CalculatedRate: 500}, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestResultRows(t *testing.T) {
	assert.Nil(t, resultRows(nil))
	rows := resultRows(&model.CalculationResponse{Output: &model.Output{Containers: []model.OutputContainer{{
		Items: []model.FinancingResultRow{{Label: "Term", Value: "36 months"}},
	}}}})
	assert.Equal(t, [][]string{{"Term", "36 months"}}, rows)
}

func TestSafeEnum(t *testing.T) {
	var missing *model.VehicleCondition
	assert.Equal(t, "-", safeEnum(missing))
	used := model.VehicleConditionUsed
	assert.Equal(t, "used", safeEnum(&used))
}
