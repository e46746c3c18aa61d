package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"actbot/internal/acts"
)

const SheetName = "Акти"

var headers = []string{"ID користувача", "Ім'я", "Дата", "Час", "Місце", "Опис"}

// Workbook encodes acts into an .xlsx document, one row per act under a
// header row.
func Workbook(items []acts.Act) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", style); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, a := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{a.SubmitterID, a.SubmitterName, a.Date, a.Time, a.Location, a.Description}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "F", 18); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName names a weekly export after the moment it was produced.
func FileName(now time.Time) string {
	return fmt.Sprintf("weekly_report_%s.xlsx", now.Format("20060102_150405"))
}
