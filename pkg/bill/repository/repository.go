package repository

import "milkbill/entities"

// Totals is the aggregate over one listing selection.
type Totals struct {
	Count       int64   `gorm:"column:count"`
	TotalLiters float64 `gorm:"column:total_liters"`
	TotalAmount float64 `gorm:"column:total_amount"`
}

type BillRepository interface {
	Create(b *entities.Bill) error
	// List returns every bill, most recent date first.
	List() ([]entities.Bill, error)
	// Search returns bills whose name contains q (case-insensitive) or whose
	// mobile contains q, most recent date first.
	Search(q string) ([]entities.Bill, error)
	// Delete removes the bill with the given id; gorm.ErrRecordNotFound when
	// no such row exists.
	Delete(id uint) error
	// Totals aggregates over the same selection List/Search would return.
	Totals(q string) (Totals, error)
}
