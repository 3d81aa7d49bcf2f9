package excel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/apper-api/internal/model"
)

const summarySheet = "Summary"

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes a summary sheet followed by one sheet per market.
func (g *Generator) Generate(calcs []model.Calculation) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	groups := groupByMarket(calcs)
	g.writeSummary(file, groups, len(calcs))

	used := map[string]struct{}{summarySheet: {}}
	for _, group := range groups {
		sheet := buildSheetName(string(group.market), used)
		used[sheet] = struct{}{}

		if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}
		g.writeDetail(file, sheet, group)
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type marketGroup struct {
	market model.MarketCode
	calcs  []model.Calculation
}

func groupByMarket(calcs []model.Calculation) []marketGroup {
	index := map[model.MarketCode]int{}
	var groups []marketGroup
	for _, calc := range calcs {
		i, ok := index[calc.Market]
		if !ok {
			i = len(groups)
			index[calc.Market] = i
			groups = append(groups, marketGroup{market: calc.Market})
		}
		groups[i].calcs = append(groups[i].calcs, calc)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].market < groups[b].market })
	return groups
}

func (g *Generator) writeSummary(file *excelize.File, groups []marketGroup, total int) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(summarySheet, cell, value)
	}

	set("A1", "Calculations")
	set("B1", total)
	set("A2", "Markets")
	set("B2", len(groups))

	tableRow := 4
	set(fmt.Sprintf("A%d", tableRow), "Market")
	set(fmt.Sprintf("B%d", tableRow), "Calculations")
	set(fmt.Sprintf("C%d", tableRow), "Average rate")

	for i, group := range groups {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), strings.ToUpper(string(group.market)))
		set(fmt.Sprintf("B%d", row), len(group.calcs))
		set(fmt.Sprintf("C%d", row), formatRate(averageRate(group.calcs)))
	}

	_ = file.SetColWidth(summarySheet, "A", "A", 20)
	_ = file.SetColWidth(summarySheet, "B", "C", 16)
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, group marketGroup) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"ID",
		"Created at",
		"Financial code",
		"Vehicle",
		"Baumuster",
		"Condition",
		"Customer type",
		"Gross list price",
		"Monthly rate",
		"Currency",
		"Request ID",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, calc := range group.calcs {
		row := i + 2
		values := []interface{}{
			calc.ID,
			formatDateTime(calc.CreatedAt),
			calc.FinancialCode,
			formatString(calc.VehicleName),
			formatString(calc.VehicleBaumuster),
			formatEnum(calc.VehicleCondition),
			formatEnum(calc.CustomerType),
			formatFloat(calc.GrossListPrice),
			formatRate(calc.CalculatedRate),
			calc.Currency,
			formatString(calc.RequestID),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 8)
	_ = file.SetColWidth(sheet, "B", "B", 20)
	_ = file.SetColWidth(sheet, "C", "D", 32)
	_ = file.SetColWidth(sheet, "E", "K", 16)
}

func buildSheetName(market string, used map[string]struct{}) string {
	base := sanitizeSheetName("Market " + strings.ToUpper(strings.TrimSpace(market)))
	if len(base) > 31 {
		base = base[:31]
	}

	candidate := base
	counter := 2
	for {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Sheet"
	}
	return value
}

func averageRate(calcs []model.Calculation) float64 {
	if len(calcs) == 0 {
		return 0
	}
	total := 0.0
	for _, calc := range calcs {
		total += calc.CalculatedRate
	}
	return total / float64(len(calcs))
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatEnum[T ~string](value *T) string {
	if value == nil {
		return ""
	}
	return string(*value)
}

func formatFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return formatRate(*value)
}

func formatRate(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
