package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/db/dbtest"
	"github.com/nurpe/apper-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

func seedCustomer(t *testing.T, repo *CustomerRepository) *model.Customer {
	t.Helper()
	c := &model.Customer{FirstName: "Anna", LastName: "Schmidt", Email: ptr("anna@example.com")}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func TestCustomerRepository_PreloadsAddresses(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	customers := NewCustomerRepository(gdb)
	addresses := NewAddressRepository(gdb)

	c := seedCustomer(t, customers)
	other := seedCustomer(t, customers)
	assert.NotEqual(t, c.ID, other.ID)

	require.NoError(t, addresses.Create(ctx, &model.Address{
		Street: "Hauptstr. 1", City: "Stuttgart", PostalCode: "70173",
		Country: model.CountryGermany, IsPrimary: true, CustomerID: c.ID,
	}))

	got, err := customers.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, "Stuttgart", got.Addresses[0].City)

	list, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = customers.Get(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	ok, err := customers.Exists(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = customers.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContractRepository_DuplicateNumber(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	c := seedCustomer(t, NewCustomerRepository(gdb))
	contracts := NewContractRepository(gdb)

	newContract := func() *model.Contract {
		return &model.Contract{
			ContractNumber: "C-1",
			StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Value:          decimal.RequireFromString("1999.99"),
			IsActive:       true,
			CustomerID:     c.ID,
		}
	}
	require.NoError(t, contracts.Create(ctx, newContract()))

	err := contracts.Create(ctx, newContract())
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	byCustomer, err := contracts.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.True(t, decimal.RequireFromString("1999.99").Equal(byCustomer[0].Value))
}

func TestVehicleRepository_UpdateOnlyProvidedFields(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	repo := NewVehicleRepository(gdb)

	v := &model.Vehicle{Name: "EQE 350", VehicleAttributes: model.VehicleAttributes{
		FIN:       ptr("W1K0000000000001"),
		Baumuster: ptr("2950121"),
		Brand:     ptr(model.VehicleBrandMercedesBenz),
		Mileage:   ptr(1200.0),
		Prices:    datatypes.JSON(`[{"id":"grossListPrice","rawValue":72000}]`),
	}}
	v.ApplyDefaults()
	require.NoError(t, repo.Create(ctx, v))

	updated, err := repo.Update(ctx, v.ID, model.Vehicle{VehicleAttributes: model.VehicleAttributes{
		Mileage: ptr(0.0),
		IsBTS:   ptr(false),
	}})
	require.NoError(t, err)

	assert.Equal(t, "EQE 350", updated.Name)
	assert.Equal(t, 0.0, *updated.Mileage)
	assert.False(t, *updated.IsBTS)
	assert.Equal(t, "2950121", *updated.Baumuster)
	assert.Equal(t, 1, *updated.Quantity)
	assert.JSONEq(t, `[{"id":"grossListPrice","rawValue":72000}]`, string(updated.Prices))

	_, err = repo.Update(ctx, 999, model.Vehicle{Name: "x"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestVehicleRepository_Lookups(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	repo := NewVehicleRepository(gdb)

	require.NoError(t, repo.Create(ctx, &model.Vehicle{Name: "A", VehicleAttributes: model.VehicleAttributes{
		FIN: ptr("FIN1"), Condition: ptr(model.VehicleConditionNew), Brand: ptr(model.VehicleBrandSmart),
	}}))
	require.NoError(t, repo.Create(ctx, &model.Vehicle{Name: "B", VehicleAttributes: model.VehicleAttributes{
		FIN: ptr("FIN2"), Condition: ptr(model.VehicleConditionUsed), Baumuster: ptr("BM1"),
	}}))

	byFIN, err := repo.ListByFIN(ctx, "FIN2")
	require.NoError(t, err)
	require.Len(t, byFIN, 1)
	assert.Equal(t, "B", byFIN[0].Name)

	byCondition, err := repo.ListByCondition(ctx, model.VehicleConditionNew)
	require.NoError(t, err)
	require.Len(t, byCondition, 1)
	assert.Equal(t, "A", byCondition[0].Name)

	byBrand, err := repo.ListByBrand(ctx, model.VehicleBrandMercedesAMG)
	require.NoError(t, err)
	assert.Empty(t, byBrand)

	byBaumuster, err := repo.ListByBaumuster(ctx, "BM1")
	require.NoError(t, err)
	assert.Len(t, byBaumuster, 1)
}

func TestVehicleRepository_DeleteTwice(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	repo := NewVehicleRepository(gdb)

	v := &model.Vehicle{Name: "GLC"}
	require.NoError(t, repo.Create(ctx, v))

	require.NoError(t, repo.Delete(ctx, v.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, v.ID), gorm.ErrRecordNotFound))
}

func TestCalculationRepository_Filters(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	repo := NewCalculationRepository(gdb)

	for _, m := range []model.MarketCode{"de", "fr", "de"} {
		require.NoError(t, repo.Create(ctx, &model.Calculation{
			Market:          m,
			Currency:        "EUR",
			CalculatedRate:  500,
			FinancialCode:   "mock_" + string(m),
			RequestPayload:  datatypes.JSON(`{}`),
			ResponsePayload: datatypes.JSON(`{}`),
			RequestID:       ptr("req-" + string(m)),
		}))
	}

	all, err := repo.List(ctx, CalculationFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	de := model.MarketCode("de")
	byMarket, err := repo.List(ctx, CalculationFilter{Market: &de})
	require.NoError(t, err)
	assert.Len(t, byMarket, 2)

	byRequest, err := repo.List(ctx, CalculationFilter{RequestID: ptr("req-fr")})
	require.NoError(t, err)
	require.Len(t, byRequest, 1)
	assert.Equal(t, model.MarketCode("fr"), byRequest[0].Market)

	limited, err := repo.List(ctx, CalculationFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.Ping(ctx))
}

func TestApplicationRepository_CreateList(t *testing.T) {
	gdb := dbtest.New(t)
	ctx := context.Background()
	repo := NewApplicationRepository(gdb)

	require.NoError(t, repo.Create(ctx, &model.Application{Name: "apper", CodeStack: ptr(model.CodeTypeGo)}))
	apps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, model.CodeTypeGo, *apps[0].CodeStack)
}
