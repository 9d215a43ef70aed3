package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eyesdeal/eyesdeal-backend/config"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/model"
	"github.com/eyesdeal/eyesdeal-backend/internal/app/repository"
	"github.com/eyesdeal/eyesdeal-backend/internal/db"
	"github.com/eyesdeal/eyesdeal-backend/pkg/masterdata"
	"github.com/xuri/excelize/v2"
)

// Imports master attributes from an XLSX sheet with columns:
// Type | Name | Value. The type column accepts any spelling a known
// attribute type normalizes to.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	masterRepo := repository.NewMasterRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	attributes, skipped, err := readAttributesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total attributes to import: %d (skipped %d rows)\n", len(attributes), skipped)
	if len(attributes) == 0 {
		fmt.Println("Nothing to import.")
		return
	}

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	if err := masterRepo.BulkCreate(attributes, batchSize); err != nil {
		log.Fatal("Failed to bulk create attributes:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total attributes imported: %d\n", len(attributes))
}

func readAttributesFromXLSX(filePath string) ([]model.MasterAttribute, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}

	var attributes []model.MasterAttribute
	skipped := 0

	for i, row := range rows {
		// Header row
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			skipped++
			continue
		}

		attributeType, err := masterdata.CanonicalType(strings.TrimSpace(row[0]))
		if err != nil {
			fmt.Printf("Row %d skipped: %v\n", i+1, err)
			skipped++
			continue
		}

		name := strings.TrimSpace(row[1])
		if name == "" {
			skipped++
			continue
		}

		attribute := model.MasterAttribute{
			Type: attributeType,
			Name: name,
		}
		if len(row) > 2 && masterdata.HasValue(attributeType) {
			attribute.Value = strings.TrimSpace(row[2])
		}

		attributes = append(attributes, attribute)
	}

	return attributes, skipped, nil
}
