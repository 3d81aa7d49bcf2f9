package model

import "strings"

// Enumerated types are closed string sets. Every type exposes Valid so the
// HTTP layer can validate them through a single "enum" binding tag.

type Country string

const (
	CountryGermany     Country = "Germany"
	CountryChina       Country = "China"
	CountrySwitzerland Country = "Switzerland"
)

func (c Country) Valid() bool {
	switch c {
	case CountryGermany, CountryChina, CountrySwitzerland:
		return true
	}
	return false
}

type MarketCode string

var marketCodes = map[MarketCode]struct{}{
	"at": {}, "au": {}, "be": {}, "ch": {}, "cz": {}, "de": {}, "dk": {}, "es": {},
	"fr": {}, "gb": {}, "hu": {}, "in": {}, "it": {}, "jp": {}, "kr": {}, "lu": {},
	"mx": {}, "my": {}, "nl": {}, "nz": {}, "pl": {}, "pt": {}, "ro": {}, "se": {},
	"sg": {}, "sk": {}, "th": {}, "tr": {}, "tw": {}, "za": {},
}

func (m MarketCode) Valid() bool {
	_, ok := marketCodes[m]
	return ok
}

// ParseMarketCode is case-insensitive; the canonical form is lower case.
func ParseMarketCode(raw string) (MarketCode, bool) {
	code := MarketCode(strings.ToLower(strings.TrimSpace(raw)))
	return code, code.Valid()
}

type VehicleDivision string

const (
	VehicleDivisionPC  VehicleDivision = "pc"
	VehicleDivisionCV  VehicleDivision = "cv"
	VehicleDivisionVan VehicleDivision = "van"
)

func (d VehicleDivision) Valid() bool {
	switch d {
	case VehicleDivisionPC, VehicleDivisionCV, VehicleDivisionVan:
		return true
	}
	return false
}

type VehicleBrand string

const (
	VehicleBrandMercedesBenz VehicleBrand = "mercedes-benz"
	VehicleBrandMercedesAMG  VehicleBrand = "mercedes-amg"
	VehicleBrandSmart        VehicleBrand = "smart"
	VehicleBrandOther        VehicleBrand = "other"
)

func (b VehicleBrand) Valid() bool {
	switch b {
	case VehicleBrandMercedesBenz, VehicleBrandMercedesAMG, VehicleBrandSmart, VehicleBrandOther:
		return true
	}
	return false
}

type VehicleCondition string

const (
	VehicleConditionNew          VehicleCondition = "new"
	VehicleConditionUsed         VehicleCondition = "used"
	VehicleConditionDemonstrator VehicleCondition = "demonstrator"
)

func (c VehicleCondition) Valid() bool {
	switch c {
	case VehicleConditionNew, VehicleConditionUsed, VehicleConditionDemonstrator:
		return true
	}
	return false
}

type CustomerType string

const (
	CustomerTypePrivate  CustomerType = "private"
	CustomerTypeBusiness CustomerType = "business"
)

func (c CustomerType) Valid() bool {
	return c == CustomerTypePrivate || c == CustomerTypeBusiness
}

type ProductType string

const (
	ProductTypeLeasing   ProductType = "leasing"
	ProductTypeFinancing ProductType = "financing"
)

func (p ProductType) Valid() bool {
	return p == ProductTypeLeasing || p == ProductTypeFinancing
}

type SubProductType string

const (
	SubProductFinancingStandard       SubProductType = "financing_standard"
	SubProductFinancingBalloon        SubProductType = "financing_balloon"
	SubProductFinancingOption         SubProductType = "financing_option"
	SubProductLeasingOperating        SubProductType = "leasing_operating"
	SubProductLeasingOperatingOptions SubProductType = "leasing_operating_options"
	SubProductLeasingFinance          SubProductType = "leasing_finance"
	SubProductLeasingFinanceOptions   SubProductType = "leasing_finance_options"
	SubProductLeasingFinanceBalloon   SubProductType = "leasing_finance_balloon"
)

func (s SubProductType) Valid() bool {
	switch s {
	case SubProductFinancingStandard, SubProductFinancingBalloon, SubProductFinancingOption,
		SubProductLeasingOperating, SubProductLeasingOperatingOptions, SubProductLeasingFinance,
		SubProductLeasingFinanceOptions, SubProductLeasingFinanceBalloon:
		return true
	}
	return false
}

type CodeType string

const (
	CodeTypeJava   CodeType = "JAVA"
	CodeTypePython CodeType = "PYTHON"
	CodeTypeGo     CodeType = "GO"
)

func (c CodeType) Valid() bool {
	return c == CodeTypeJava || c == CodeTypePython || c == CodeTypeGo
}

type DBType string

const (
	DBTypePostgres DBType = "postgres"
	DBTypeMySQL    DBType = "mysql"
	DBTypeSQLite   DBType = "sqlite"
)

func (d DBType) Valid() bool {
	return d == DBTypePostgres || d == DBTypeMySQL || d == DBTypeSQLite
}
