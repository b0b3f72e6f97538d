package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/erp/salesengine/internal/domain/sales"
)

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries a machine-readable code with a human-readable message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondOK writes a success envelope.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// respondError maps domain errors to HTTP statuses. Degenerate statistics
// (empty denominator collections, single-sample deviations) surface as 422
// "insufficient data" rather than crashing or faking a zero.
func respondError(c *gin.Context, err error) {
	var domainErr *sales.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusInternalServerError
		switch domainErr {
		case sales.ErrEmptyDataset, sales.ErrInsufficientData:
			status = http.StatusUnprocessableEntity
		case sales.ErrInvalidStatus, sales.ErrInvalidResult, sales.ErrInvalidID:
			status = http.StatusBadRequest
		}
		c.JSON(status, APIResponse{Success: false, Error: &ErrorInfo{Code: domainErr.Code, Message: domainErr.Message}})
		return
	}
	c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Error: &ErrorInfo{Code: "INTERNAL", Message: err.Error()}})
}

// respondBadRequest writes a 400 envelope for malformed request input.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: &ErrorInfo{Code: "INVALID_INPUT", Message: message}})
}

// ===================== Entity DTOs =====================

// MerchantResponse represents a merchant in report output
type MerchantResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ItemResponse represents an item in report output
type ItemResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	MerchantID int    `json:"merchant_id"`
}

// CustomerResponse represents a customer in report output
type CustomerResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ValueData wraps a scalar statistic
type ValueData struct {
	Value float64 `json:"value"`
}

// AmountData wraps a money amount, serialized as a fixed-point string
type AmountData struct {
	Amount string `json:"amount"`
}

func toMerchantResponses(merchants []*sales.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(merchants))
	for _, m := range merchants {
		out = append(out, MerchantResponse{ID: m.ID, Name: m.Name})
	}
	return out
}

func toItemResponses(items []*sales.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}

func toItemResponse(i *sales.Item) ItemResponse {
	return ItemResponse{ID: i.ID, Name: i.Name, UnitPrice: i.UnitPrice.StringFixed(2), MerchantID: i.MerchantID}
}

func toCustomerResponses(customers []*sales.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, CustomerResponse{ID: cu.ID, FirstName: cu.FirstName, LastName: cu.LastName})
	}
	return out
}

func amount(d decimal.Decimal) AmountData {
	return AmountData{Amount: d.StringFixed(2)}
}
