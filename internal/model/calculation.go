package model

import (
	"time"

	"gorm.io/datatypes"
)

// Calculation is the audit record kept for every financing calculation
// served by the mock endpoint.
type Calculation struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	Market           MarketCode        `gorm:"type:varchar(2);not null;index" json:"market"`
	CustomerType     *CustomerType     `gorm:"type:varchar(16)" json:"customer_type"`
	ProductType      *ProductType      `gorm:"type:varchar(16)" json:"product_type"`
	VehicleName      *string           `gorm:"type:varchar(255)" json:"vehicle_name"`
	VehicleBaumuster *string           `gorm:"type:varchar(64)" json:"vehicle_baumuster"`
	VehicleNST       *string           `gorm:"column:vehicle_nst;type:varchar(64)" json:"vehicle_nst"`
	VehicleCondition *VehicleCondition `gorm:"type:varchar(16)" json:"vehicle_condition"`
	GrossListPrice   *float64          `json:"gross_list_price"`
	Currency         string            `gorm:"type:varchar(3);not null" json:"currency"`
	CalculatedRate   float64           `gorm:"not null" json:"calculated_rate"`
	FinancialCode    string            `gorm:"type:varchar(255);not null" json:"financial_code"`
	RequestPayload   datatypes.JSON    `gorm:"not null" json:"request_payload"`
	ResponsePayload  datatypes.JSON    `gorm:"not null" json:"response_payload"`
	OpaqueToken      string            `gorm:"type:text" json:"opaque_token"`
	AcceptLanguage   *string           `gorm:"type:varchar(255)" json:"accept_language"`
	UserAgent        *string           `gorm:"type:varchar(255)" json:"user_agent"`
	RequestID        *string           `gorm:"column:request_id;type:varchar(64);index" json:"request_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Calculation request, as sent by the financing widget.

type ChargeInfo struct {
	Label           *string  `json:"label"`
	RawRate         *float64 `json:"rawRate"`
	RawAmount       *float64 `json:"rawAmount"`
	ExemptionAmount *float64 `json:"exemptionAmount"`
	Type            *string  `json:"type"`
}

type PriceInfo struct {
	ID       string       `json:"id" binding:"required"`
	Currency string       `json:"currency" binding:"required"`
	RawValue *float64     `json:"rawValue" binding:"required"`
	Charges  []ChargeInfo `json:"charges"`
}

type Equipment struct {
	Code     *string     `json:"code"`
	CodeType *string     `json:"codeType"`
	Name     *string     `json:"name"`
	Prices   []PriceInfo `json:"prices" binding:"omitempty,dive"`
}

type VehicleConfiguration struct {
	Division         *VehicleDivision `json:"division" binding:"omitempty,enum"`
	Brand            *VehicleBrand    `json:"brand" binding:"omitempty,enum"`
	Baumuster        *string          `json:"baumuster"`
	NST              *string          `json:"nst"`
	ModelYear        *string          `json:"modelYear"`
	ChangeYear       *string          `json:"changeYear"`
	SalesClass       *string          `json:"salesClass"`
	SalesDescription *string          `json:"salesDescription"`
	Equipments       []Equipment      `json:"equipments" binding:"omitempty,dive"`
}

type VehicleConditionInfo struct {
	FirstRegistrationDate *string           `json:"firstRegistrationDate"`
	Condition             *VehicleCondition `json:"condition" binding:"omitempty,enum"`
	IsBTS                 *bool             `json:"isBts"`
}

type CalculationVehicle struct {
	TechnicalIDReference *string               `json:"technicalIdReference"`
	DealID               *string               `json:"dealId"`
	FIN                  *string               `json:"fin"`
	VehicleConfiguration *VehicleConfiguration `json:"vehicleConfiguration"`
	Condition            *VehicleConditionInfo `json:"condition"`
	Name                 *string               `json:"name"`
	Prices               []PriceInfo           `json:"prices" binding:"omitempty,dive"`
	FinancialCode        *string               `json:"financialCode"`
}

type CalculationCustomer struct {
	Type               *CustomerType   `json:"type" binding:"omitempty,enum"`
	SegmentID          *string         `json:"segmentId"`
	FleetAccountNumber *string         `json:"fleetAccountNumber"`
	ProductType        *ProductType    `json:"productType" binding:"omitempty,enum"`
	SubProductType     *SubProductType `json:"subProductType" binding:"omitempty,enum"`
	RegionCode         *string         `json:"regionCode"`
}

type FinancialParameter struct {
	ID    string `json:"id" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type CalculationRequest struct {
	Vehicle  *CalculationVehicle  `json:"vehicle" binding:"required"`
	Customer *CalculationCustomer `json:"customer"`
	Input    []FinancialParameter `json:"input" binding:"omitempty,dive"`
	Opaque   *string              `json:"opaque"`
}

// GrossListPrice returns the first price entry with id "grossListPrice".
func (r *CalculationRequest) GrossListPrice() (PriceInfo, bool) {
	if r == nil || r.Vehicle == nil {
		return PriceInfo{}, false
	}
	for _, p := range r.Vehicle.Prices {
		if p.ID == "grossListPrice" {
			return p, true
		}
	}
	return PriceInfo{}, false
}

// Calculation response.

type SingleValue struct {
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

type InputField struct {
	ID          string        `json:"id"`
	Label       string        `json:"label,omitempty"`
	Type        string        `json:"type,omitempty"`
	Value       string        `json:"value,omitempty"`
	Unit        string        `json:"unit,omitempty"`
	Values      []SingleValue `json:"values,omitempty"`
	Disclaimer  string        `json:"disclaimer,omitempty"`
	InfoTextKey string        `json:"infoTextKey,omitempty"`
}

type InputContainer struct {
	ID              string           `json:"id"`
	Label           string           `json:"label,omitempty"`
	Items           []InputField     `json:"items"`
	ChildContainers []InputContainer `json:"childContainers,omitempty"`
}

type FinancingResultRow struct {
	ID            string `json:"id"`
	Disclaimer    string `json:"disclaimer,omitempty"`
	Highlight     bool   `json:"highlight,omitempty"`
	InfoTextKey   string `json:"infoTextKey,omitempty"`
	Label         string `json:"label"`
	Value         string `json:"value"`
	Subtype       string `json:"subtype,omitempty"`
	BusinessValue string `json:"businessValue,omitempty"`
	UnitFormatted string `json:"unitFormatted,omitempty"`
	Unit          string `json:"unit,omitempty"`
}

type OutputContainer struct {
	ID              string               `json:"id"`
	Label           string               `json:"label"`
	Items           []FinancingResultRow `json:"items"`
	ChildContainers []OutputContainer    `json:"childContainers,omitempty"`
}

type Link struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	URL            string `json:"url"`
	Classification string `json:"classification"`
}

type FinancingProduct struct {
	ID             string         `json:"id"`
	Label          string         `json:"label"`
	CustomerType   CustomerType   `json:"customerType"`
	ProductType    ProductType    `json:"productType"`
	SubProductType SubProductType `json:"subProductType"`
	IsCampaign     bool           `json:"isCampaign"`
}

type Output struct {
	FinancialCode    string            `json:"financialCode"`
	Currency         string            `json:"currency"`
	WidgetTitle      string            `json:"widgetTitle"`
	Rate             string            `json:"rate"`
	RateData         float64           `json:"rateData"`
	Messages         []string          `json:"messages"`
	FinancingProduct *FinancingProduct `json:"financingProduct"`
	Containers       []OutputContainer `json:"containers"`
	Links            []Link            `json:"links"`
}

type CalculationResponse struct {
	Output  *Output         `json:"output"`
	Input   *InputContainer `json:"input"`
	Tables  []any           `json:"tables"`
	Code    int             `json:"code"`
	Type    string          `json:"type"`
	Message string          `json:"message"`
	Opaque  string          `json:"opaque"`
}

// Health report of the financing gateway.

type HealthDownstream struct {
	Proxy      string  `json:"proxy"`
	StatusCode int     `json:"statusCode"`
	Details    *string `json:"details"`
}

type HealthResponse struct {
	Status     string             `json:"status"`
	Downstream []HealthDownstream `json:"downstream"`
}
