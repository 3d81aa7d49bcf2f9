package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/apper-api/internal/model"
	"github.com/nurpe/apper-api/internal/repository"
)

// CustomerService owns customers together with their addresses and
// contracts.
type CustomerService struct {
	customers *repository.CustomerRepository
	addresses *repository.AddressRepository
	contracts *repository.ContractRepository
}

func NewCustomerService(
	customers *repository.CustomerRepository,
	addresses *repository.AddressRepository,
	contracts *repository.ContractRepository,
) *CustomerService {
	return &CustomerService{customers: customers, addresses: addresses, contracts: contracts}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	customer.FirstName = strings.TrimSpace(customer.FirstName)
	customer.LastName = strings.TrimSpace(customer.LastName)
	if customer.FirstName == "" || customer.LastName == "" {
		return nil, fmt.Errorf("%w: firstName and lastName are required", ErrInvalidInput)
	}
	customer.ID = 0
	customer.Contracts = nil
	for i := range customer.Addresses {
		if !customer.Addresses[i].Country.Valid() {
			return nil, fmt.Errorf("%w: unsupported country %q", ErrInvalidInput, customer.Addresses[i].Country)
		}
		customer.Addresses[i].ID = 0
		customer.Addresses[i].CustomerID = 0
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, translate(err)
	}
	customer.Addresses = nonNil(customer.Addresses)
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		customers[i].Addresses = nonNil(customers[i].Addresses)
	}
	return nonNil(customers), nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*model.Customer, error) {
	customer, err := s.customers.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	customer.Addresses = nonNil(customer.Addresses)
	return customer, nil
}

func (s *CustomerService) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	if !address.Country.Valid() {
		return nil, fmt.Errorf("%w: unsupported country %q", ErrInvalidInput, address.Country)
	}
	if address.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	address.ID = 0
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, translate(err)
	}
	return address, nil
}

func (s *CustomerService) ListAddresses(ctx context.Context) ([]model.Address, error) {
	addresses, err := s.addresses.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(addresses), nil
}

func (s *CustomerService) GetAddress(ctx context.Context, id uint) (*model.Address, error) {
	address, err := s.addresses.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return address, nil
}

func (s *CustomerService) ListCustomerAddresses(ctx context.Context, customerID uint) ([]model.Address, error) {
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	addresses, err := s.addresses.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return nonNil(addresses), nil
}

func (s *CustomerService) CreateContract(ctx context.Context, contract *model.Contract) (*model.Contract, error) {
	contract.ContractNumber = strings.TrimSpace(contract.ContractNumber)
	if contract.ContractNumber == "" {
		return nil, fmt.Errorf("%w: contractNumber is required", ErrInvalidInput)
	}
	if contract.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if contract.EndDate != nil && contract.EndDate.Before(contract.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}
	if contract.Value.IsNegative() {
		return nil, fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}
	if contract.CustomerID == 0 {
		return nil, fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	contract.ID = 0
	contract.Value = contract.Value.Round(2)

	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, translate(err)
	}
	return contract, nil
}

func (s *CustomerService) ListContracts(ctx context.Context) ([]model.Contract, error) {
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(contracts), nil
}

func (s *CustomerService) GetContract(ctx context.Context, id uint) (*model.Contract, error) {
	contract, err := s.contracts.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return contract, nil
}

func (s *CustomerService) ListCustomerContracts(ctx context.Context, customerID uint) ([]model.Contract, error) {
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	contracts, err := s.contracts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return nonNil(contracts), nil
}

func (s *CustomerService) ensureCustomer(ctx context.Context, id uint) error {
	ok, err := s.customers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
