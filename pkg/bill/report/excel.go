package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"milkbill/entities"
)

const sheet = "Bills"

// Workbook renders bills into a single-sheet xlsx file, one row per bill in
// the order given. The caller owns the file and must Close it.
func Workbook(bills []entities.Bill) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	header := []any{"ID", "Name", "Mobile", "Date", "Morning (L)", "Evening (L)", "Rate", "Total Liters", "Total Amount", "Created At"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	for i, b := range bills {
		row := []any{
			b.ID, b.Name, b.Mobile, b.Date,
			b.Morning, b.Evening, b.Rate,
			b.TotalLiters, b.TotalAmount,
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}
