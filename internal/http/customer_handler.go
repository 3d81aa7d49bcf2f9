package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/apper-api/internal/model"
)

type addressFields struct {
	Street     string        `json:"street" binding:"required"`
	City       string        `json:"city" binding:"required"`
	State      *string       `json:"state"`
	PostalCode string        `json:"postalCode" binding:"required"`
	Country    model.Country `json:"country" binding:"required,enum"`
	IsPrimary  bool          `json:"isPrimary"`
}

func (f addressFields) toModel(customerID uint) model.Address {
	return model.Address{
		Street:     strings.TrimSpace(f.Street),
		City:       strings.TrimSpace(f.City),
		State:      f.State,
		PostalCode: strings.TrimSpace(f.PostalCode),
		Country:    f.Country,
		IsPrimary:  f.IsPrimary,
		CustomerID: customerID,
	}
}

type createCustomerRequest struct {
	FirstName    string          `json:"firstName" binding:"required"`
	LastName     string          `json:"lastName" binding:"required"`
	MobileNumber *string         `json:"mobileNumber"`
	Email        *string         `json:"email" binding:"omitempty,email"`
	Addresses    []addressFields `json:"addresses" binding:"omitempty,dive"`
}

type createAddressRequest struct {
	addressFields
	CustomerID uint `json:"customerId" binding:"required"`
}

type createContractRequest struct {
	ContractNumber string           `json:"contractNumber" binding:"required,max=64"`
	Description    *string          `json:"description"`
	StartDate      string           `json:"startDate" binding:"required"`
	EndDate        *string          `json:"endDate"`
	Value          *decimal.Decimal `json:"value" binding:"required"`
	IsActive       *bool            `json:"isActive"`
	CustomerID     uint             `json:"customerId" binding:"required"`
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	customer := &model.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
	}
	for _, a := range req.Addresses {
		customer.Addresses = append(customer.Addresses, a.toModel(0))
	}

	created, err := h.customers.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.ListCustomers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) listCustomerAddresses(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	addresses, err := h.customers.ListCustomerAddresses(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *Handler) listCustomerContracts(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contracts, err := h.customers.ListCustomerContracts(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) createAddress(c *gin.Context) {
	var req createAddressRequest
	if !h.bindJSON(c, &req) {
		return
	}
	address := req.toModel(req.CustomerID)
	created, err := h.customers.CreateAddress(c.Request.Context(), &address)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listAddresses(c *gin.Context) {
	addresses, err := h.customers.ListAddresses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *Handler) getAddress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	address, err := h.customers.GetAddress(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *Handler) createContract(c *gin.Context) {
	var req createContractRequest
	if !h.bindJSON(c, &req) {
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
		return
	}
	contract := &model.Contract{
		ContractNumber: req.ContractNumber,
		Description:    req.Description,
		StartDate:      start,
		Value:          *req.Value,
		IsActive:       true,
		CustomerID:     req.CustomerID,
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return
		}
		contract.EndDate = &end
	}
	if req.IsActive != nil {
		contract.IsActive = *req.IsActive
	}

	created, err := h.customers.CreateContract(c.Request.Context(), contract)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listContracts(c *gin.Context) {
	contracts, err := h.customers.ListContracts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *Handler) getContract(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contract, err := h.customers.GetContract(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}
