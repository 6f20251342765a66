package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"oda-chatbot-be/internal/model"
	"oda-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Loads a data.go.kr file-data CSV export into the file_data table. The CSV
// keeps the portal's Korean headers; rows are matched by header name so
// column order in the export does not matter.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	csvPath := "data/file_data.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	file, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("Error: Failed to open CSV %s: %v", csvPath, err)
	}
	defer file.Close()

	color.Cyan("🚀 Seeding file_data from %s\n", csvPath)

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		log.Fatal("Error: Failed to read CSV header:", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}
	for _, required := range []string{"공공데이터pk", "파일데이터명", "제목"} {
		if _, ok := col[required]; !ok {
			log.Fatalf("Error: CSV is missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	inserted, skipped, failed := 0, 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			color.Red("Bad row: %v", err)
			failed++
			continue
		}

		pk, err := strconv.ParseInt(field(row, "공공데이터pk"), 10, 64)
		if err != nil {
			color.Red("Bad pk %q: %v", field(row, "공공데이터pk"), err)
			failed++
			continue
		}

		record := model.PublicData{
			PublicDataPk:         pk,
			FileDataName:         field(row, "파일데이터명"),
			Title:                field(row, "제목"),
			ClassificationSystem: field(row, "분류체계"),
			ProviderAgency:       field(row, "제공기관"),
			FileExtension:        field(row, "확장자"),
			Keywords:             field(row, "키워드"),
			Description:          field(row, "설명"),
		}
		if raw := field(row, "수정일"); raw != "" {
			if parsed, err := time.Parse("2006-01-02", raw); err == nil {
				record.ModifiedDate = &parsed
			}
		}

		var existing model.PublicData
		if err := db.Where("공공데이터pk = ?", pk).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		if err := db.Create(&record).Error; err != nil {
			color.Red("Failed to insert %s: %v", record.FileDataName, err)
			failed++
			continue
		}
		inserted++
	}

	color.Green("Done: %d inserted, %d already present, %d failed", inserted, skipped, failed)
}
