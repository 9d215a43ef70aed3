package service

import (
	"fmt"

	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/pkg/logger"
	"github.com/xuri/excelize/v2"
)

var recallExportHeaders = []string{
	"Customer Name", "Phone", "Store", "Recall Date", "Status", "Notes",
}

// BuildRecallWorkbook renders recalls into an XLSX workbook for download.
// The caller owns closing the file.
func BuildRecallWorkbook(recalls []model.Recall) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Recalls"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		logger.Warn("Failed to drop default sheet", map[string]interface{}{
			"error": err.Error(),
		})
	}

	for col, header := range recallExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, recall := range recalls {
		status := "Pending"
		if recall.Status {
			status = "Done"
		}
		values := []interface{}{
			recall.CustomerName,
			recall.CustomerPhone,
			recall.StoreID,
			recall.RecallDate.Format("2006-01-02"),
			status,
			recall.Notes,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Recall workbook built", map[string]interface{}{
		"rows": len(recalls),
	})
	return f, nil
}
