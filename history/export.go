package history

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Export writes the customer's booking history to an xlsx file at path.
func (r *Reporter) Export(customerID uint, path string) error {
	records, err := r.View(customerID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	sheet := "History"
	f.NewSheet(sheet)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"BookingID", "RoomID", "Nights", "CheckIn", "CheckOut",
		"Status", "BookingTime", "TotalAmount", "CancellationStatus", "CancellationTimestamp",
	}

	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, record := range records {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), record.BookingID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), record.RoomID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), record.Nights)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), record.CheckIn)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), record.CheckOut)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), record.Status)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), record.BookingTime)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), record.TotalAmount)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", i+2), record.CancellationStatus)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", i+2), record.CancellationTimestamp)
	}

	return f.SaveAs(path)
}
