package entities

import "time"

// Bill is one billing record for a delivery customer covering a single date.
// TotalLiters and TotalAmount are always computed server-side from the
// delivered quantities and rate; they are never accepted from a client.
// A bill is created, read and deleted — there is no update path.
type Bill struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name" gorm:"index"`
	Mobile      string  `json:"mobile" gorm:"index"` // exactly 10 digits
	Date        string  `json:"date" gorm:"index"`   // YYYY-MM-DD
	Morning     float64 `json:"morning"`             // liters
	Evening     float64 `json:"evening"`             // liters
	Rate        float64 `json:"rate"`                // per liter
	TotalLiters float64 `json:"total_liters"`
	TotalAmount float64 `json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
}
