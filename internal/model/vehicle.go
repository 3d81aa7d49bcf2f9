package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	DefaultVehicleQuantity = 1
	DefaultProposalType    = "initial"
)

// Vehicle is a persisted vehicle record. Everything except Name is optional;
// nested structures the service does not query on are stored as JSON blobs.
type Vehicle struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	VehicleAttributes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleAttributes is shared between create and update payloads. Nil fields
// are left untouched by an update.
type VehicleAttributes struct {
	TechnicalIDReference *string `gorm:"column:technical_id_reference;type:varchar(255)" json:"technical_id_reference"`
	DealID               *string `gorm:"column:deal_id;type:varchar(255);index" json:"deal_id"`
	FIN                  *string `gorm:"column:fin;type:varchar(17);index" json:"fin" binding:"omitempty,max=17"`
	FinancialCode        *string `gorm:"type:varchar(255)" json:"financial_code"`

	Division         *VehicleDivision `gorm:"type:varchar(16)" json:"division" binding:"omitempty,enum"`
	Brand            *VehicleBrand    `gorm:"type:varchar(32);index" json:"brand" binding:"omitempty,enum"`
	Baumuster        *string          `gorm:"type:varchar(64);index" json:"baumuster"`
	NST              *string          `gorm:"column:nst;type:varchar(64)" json:"nst"`
	ModelYear        *string          `gorm:"type:varchar(16)" json:"model_year"`
	ChangeYear       *string          `gorm:"type:varchar(16)" json:"change_year"`
	SalesClass       *string          `gorm:"type:varchar(64)" json:"sales_class"`
	SalesDescription *string          `gorm:"type:text" json:"sales_description"`

	Condition             *VehicleCondition `gorm:"type:varchar(16);index" json:"condition" binding:"omitempty,enum"`
	FirstRegistrationDate *string           `gorm:"type:varchar(32)" json:"first_registration_date"`
	Mileage               *float64          `json:"mileage"`
	MileageUnit           *string           `gorm:"type:varchar(16)" json:"mileage_unit"`
	IsBTS                 *bool             `gorm:"column:is_bts" json:"is_bts"`

	GrossListPrice *float64 `json:"gross_list_price"`
	BaseListPrice  *float64 `json:"base_list_price"`
	PurchasePrice  *float64 `json:"purchase_price"`
	Currency       *string  `gorm:"type:varchar(3)" json:"currency" binding:"omitempty,len=3"`
	VATReclaimable *bool    `gorm:"column:vat_reclaimable" json:"vat_reclaimable"`

	Usage               *string `gorm:"type:varchar(64)" json:"usage"`
	Warranty            *string `gorm:"type:varchar(255)" json:"warranty"`
	Quantity            *int    `json:"quantity" binding:"omitempty,min=1"`
	VehicleOrderDate    *string `gorm:"type:varchar(32)" json:"vehicle_order_date"`
	TaxCase             *string `gorm:"type:varchar(64)" json:"tax_case"`
	ProposalType        *string `gorm:"type:varchar(32)" json:"proposal_type"`
	InitialProposalDate *string `gorm:"type:varchar(32)" json:"initial_proposal_date"`
	ProposalVersion     *int    `json:"proposal_version"`

	VehicleConfiguration datatypes.JSON `json:"vehicle_configuration"`
	ConditionDetails     datatypes.JSON `json:"condition_details"`
	Prices               datatypes.JSON `json:"prices"`
	TechnicalData        datatypes.JSON `json:"technical_data"`
	Equipments           datatypes.JSON `json:"equipments"`
	AdditionalValues     datatypes.JSON `json:"additional_values"`
	AdditionalAttributes datatypes.JSON `json:"additional_attributes"`
}

// ApplyDefaults fills the columns that have a documented default on create.
func (v *Vehicle) ApplyDefaults() {
	if v.Quantity == nil {
		q := DefaultVehicleQuantity
		v.Quantity = &q
	}
	if v.ProposalType == nil {
		p := DefaultProposalType
		v.ProposalType = &p
	}
}
