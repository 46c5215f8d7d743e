package service

import (
	"strings"

	"milkbill/entities"
)

// CreateBillRequest carries the raw create payload. Quantities and rate bind
// through pointers so a missing field is distinguishable from an explicit zero.
type CreateBillRequest struct {
	Name    string   `json:"name" validate:"required"`
	Mobile  string   `json:"mobile" validate:"required"`
	Date    string   `json:"date" validate:"required"`
	Morning *float64 `json:"morning" validate:"required,gte=0"`
	Evening *float64 `json:"evening" validate:"required,gte=0"`
	Rate    *float64 `json:"rate" validate:"required,gte=0.01"`
}

// Summary aggregates one listing selection.
type Summary struct {
	Count       int64   `json:"count"`
	TotalLiters float64 `json:"total_liters"`
	TotalAmount float64 `json:"total_amount"`
}

// ValidationError reports every field that failed the create checks.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "invalid bill: " + strings.Join(e.Details, "; ")
}

type BillService interface {
	// Create validates req, computes TotalLiters/TotalAmount and persists the
	// bill. A *ValidationError means the payload was rejected.
	Create(req CreateBillRequest) (*entities.Bill, error)
	// List returns all bills when query is empty, otherwise the bills matching
	// query by name (case-insensitive) or mobile; always date-descending.
	List(query string) ([]entities.Bill, error)
	// Delete removes a bill; gorm.ErrRecordNotFound when the id is unknown.
	Delete(id uint) error
	// Summarize totals the same selection List would return.
	Summarize(query string) (Summary, error)
}
