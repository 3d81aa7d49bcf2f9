package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nurpe/apper-api/internal/model"
	"github.com/nurpe/apper-api/internal/repository"
)

const (
	termMonths   = 36
	fallbackRate = 500.0
	defaultCurr  = "EUR"

	maxHeaderLength = 255
)

type ExcelGenerator interface {
	Generate(calcs []model.Calculation) ([]byte, error)
}

type PDFGenerator interface {
	Generate(calc model.Calculation, resp *model.CalculationResponse) ([]byte, error)
}

type CalculationService struct {
	repo    *repository.CalculationRepository
	excel   ExcelGenerator
	pdf     PDFGenerator
	markets []string
	now     func() time.Time
}

func NewCalculationService(
	repo *repository.CalculationRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
	healthMarkets []string,
) *CalculationService {
	return &CalculationService{
		repo:    repo,
		excel:   excel,
		pdf:     pdf,
		markets: healthMarkets,
		now:     time.Now,
	}
}

// WithClock replaces the time source used for financial codes and opaque
// tokens.
func (s *CalculationService) WithClock(now func() time.Time) *CalculationService {
	s.now = now
	return s
}

type CalculateInput struct {
	Market         string
	Request        model.CalculationRequest
	AcceptLanguage string
	UserAgent      string
	RequestID      string
}

// Quote is the derived result of one calculation request.
type Quote struct {
	Market         model.MarketCode
	GrossListPrice *float64
	Currency       string
	Rate           float64
	FinancialCode  string
	Opaque         string
	Response       *model.CalculationResponse
}

// BuildQuote derives the mock financing quote. It has no side effects.
func BuildQuote(market model.MarketCode, req *model.CalculationRequest, now time.Time) Quote {
	ts := unixTimestamp(now)

	currency := defaultCurr
	rate := fallbackRate
	var gross *float64
	if price, ok := req.GrossListPrice(); ok {
		currency = price.Currency
		gross = price.RawValue
		if gross != nil && *gross != 0 {
			rate = *gross / termMonths
		}
	}

	customerType := model.CustomerTypePrivate
	if req.Customer != nil && req.Customer.Type != nil {
		customerType = *req.Customer.Type
	}

	financialCode := "mock_" + string(market) + "_" + ts
	opaque := "mock_opaque_" + ts
	rateText := fmt.Sprintf("%.2f %s", rate, currency)

	resp := &model.CalculationResponse{
		Output: &model.Output{
			FinancialCode: financialCode,
			Currency:      currency,
			WidgetTitle:   fmt.Sprintf("Mercedes-Benz Bank | Calculator [%s]", strings.ToUpper(string(market))),
			Rate:          rateText,
			RateData:      rate,
			Messages:      []string{},
			FinancingProduct: &model.FinancingProduct{
				ID:             "1",
				Label:          "Standard Financing",
				CustomerType:   customerType,
				ProductType:    model.ProductTypeFinancing,
				SubProductType: model.SubProductFinancingStandard,
				IsCampaign:     false,
			},
			Containers: []model.OutputContainer{{
				ID:    "output",
				Label: "Calculation Result",
				Items: []model.FinancingResultRow{
					{
						ID:            "monthlyRate",
						Label:         "Monthly Rate",
						Value:         rateText,
						BusinessValue: fmt.Sprintf("%.2f", rate),
						Subtype:       "currency",
						UnitFormatted: currency,
						Highlight:     true,
					},
					{
						ID:            "term",
						Label:         "Term",
						Value:         fmt.Sprintf("%d months", termMonths),
						BusinessValue: strconv.Itoa(termMonths),
						Subtype:       "number",
						UnitFormatted: "months",
					},
				},
			}},
			Links: []model.Link{{
				ID:             "close",
				Label:          "Close",
				URL:            "#",
				Classification: "default",
			}},
		},
		Code:    200,
		Type:    "success",
		Message: "Calculation successful (mock)",
		Opaque:  opaque,
	}

	return Quote{
		Market:         market,
		GrossListPrice: gross,
		Currency:       currency,
		Rate:           rate,
		FinancialCode:  financialCode,
		Opaque:         opaque,
		Response:       resp,
	}
}

// Calculate builds the quote and appends the audit record. A failed write
// fails the request.
func (s *CalculationService) Calculate(ctx context.Context, input CalculateInput) (*model.CalculationResponse, error) {
	market, ok := model.ParseMarketCode(input.Market)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported market %q", ErrInvalidInput, input.Market)
	}
	if input.Request.Vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle is required", ErrInvalidInput)
	}

	quote := BuildQuote(market, &input.Request, s.now())

	requestPayload, err := json.Marshal(input.Request)
	if err != nil {
		return nil, fmt.Errorf("encode request payload: %w", err)
	}
	responsePayload, err := json.Marshal(quote.Response)
	if err != nil {
		return nil, fmt.Errorf("encode response payload: %w", err)
	}

	calc := &model.Calculation{
		Market:          market,
		GrossListPrice:  quote.GrossListPrice,
		Currency:        quote.Currency,
		CalculatedRate:  quote.Rate,
		FinancialCode:   quote.FinancialCode,
		RequestPayload:  requestPayload,
		ResponsePayload: responsePayload,
		OpaqueToken:     quote.Opaque,
		AcceptLanguage:  headerValue(input.AcceptLanguage),
		UserAgent:       headerValue(input.UserAgent),
		RequestID:       headerValue(input.RequestID),
	}
	if c := input.Request.Customer; c != nil {
		calc.CustomerType = c.Type
		calc.ProductType = c.ProductType
	}
	v := input.Request.Vehicle
	calc.VehicleName = v.Name
	if v.VehicleConfiguration != nil {
		calc.VehicleBaumuster = v.VehicleConfiguration.Baumuster
		calc.VehicleNST = v.VehicleConfiguration.NST
	}
	if v.Condition != nil {
		calc.VehicleCondition = v.Condition.Condition
	}

	if err := s.repo.Create(ctx, calc); err != nil {
		return nil, fmt.Errorf("store calculation: %w", translate(err))
	}
	return quote.Response, nil
}

func (s *CalculationService) List(ctx context.Context) ([]model.Calculation, error) {
	return s.list(ctx, repository.CalculationFilter{})
}

func (s *CalculationService) Get(ctx context.Context, id uint) (*model.Calculation, error) {
	calc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return calc, nil
}

func (s *CalculationService) ListByMarket(ctx context.Context, raw string) ([]model.Calculation, error) {
	market, ok := model.ParseMarketCode(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported market %q", ErrInvalidInput, raw)
	}
	return s.list(ctx, repository.CalculationFilter{Market: &market})
}

func (s *CalculationService) ListByRequestID(ctx context.Context, requestID string) ([]model.Calculation, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}
	return s.list(ctx, repository.CalculationFilter{RequestID: &requestID})
}

func (s *CalculationService) list(ctx context.Context, filter repository.CalculationFilter) ([]model.Calculation, error) {
	calcs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return nonNil(calcs), nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Export renders the audit log, optionally restricted to one market, as a
// spreadsheet.
func (s *CalculationService) Export(ctx context.Context, market string) (*ExportResult, error) {
	filter := repository.CalculationFilter{}
	suffix := "all"
	if strings.TrimSpace(market) != "" {
		code, ok := model.ParseMarketCode(market)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported market %q", ErrInvalidInput, market)
		}
		filter.Market = &code
		suffix = string(code)
	}

	calcs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(calcs)
	if err != nil {
		return nil, fmt.Errorf("generate spreadsheet: %w", err)
	}
	return &ExportResult{
		FileName: fmt.Sprintf("calculations_%s_%s.xlsx", suffix, s.now().UTC().Format("20060102")),
		Content:  content,
	}, nil
}

// QuotePDF renders the stored quote of one calculation.
func (s *CalculationService) QuotePDF(ctx context.Context, id uint) (*ExportResult, error) {
	calc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp model.CalculationResponse
	if len(calc.ResponsePayload) > 0 {
		if err := json.Unmarshal(calc.ResponsePayload, &resp); err != nil {
			return nil, fmt.Errorf("decode stored response: %w", err)
		}
	}

	content, err := s.pdf.Generate(*calc, &resp)
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return &ExportResult{
		FileName: fmt.Sprintf("quote_%d.pdf", calc.ID),
		Content:  content,
	}, nil
}

// Health reports the mocked financing gateways and the database.
func (s *CalculationService) Health(ctx context.Context) model.HealthResponse {
	resp := model.HealthResponse{Status: "up", Downstream: make([]model.HealthDownstream, 0, len(s.markets)+1)}
	for _, m := range s.markets {
		resp.Downstream = append(resp.Downstream, model.HealthDownstream{
			Proxy:      "ocapi-v3-" + m + "-prd",
			StatusCode: 200,
		})
	}

	dbStatus := model.HealthDownstream{Proxy: "database", StatusCode: 200}
	if err := s.repo.Ping(ctx); err != nil {
		msg := err.Error()
		dbStatus.StatusCode = 503
		dbStatus.Details = &msg
		resp.Status = "degraded"
	}
	resp.Downstream = append(resp.Downstream, dbStatus)
	return resp
}

func unixTimestamp(t time.Time) string {
	return strconv.FormatFloat(float64(t.UnixMicro())/1e6, 'f', -1, 64)
}

func headerValue(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if r := []rune(raw); len(r) > maxHeaderLength {
		raw = string(r[:maxHeaderLength])
	}
	return &raw
}
