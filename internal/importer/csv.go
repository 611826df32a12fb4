package importer

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/invierte-coyoacan/invest-backend-go/internal/database"
)

// Importer loads a materialized CSV export of the prepared dataset into the
// properties table. It replaces the table wholesale inside one transaction;
// derived columns may be absent from the file, the loader backfills them.
type Importer struct {
	db *sql.DB
}

// New creates a new importer
func New(db *sql.DB) *Importer {
	return &Importer{db: db}
}

// ImportFile imports the CSV file at the given path and returns the number
// of rows loaded.
func (im *Importer) ImportFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer f.Close()

	return im.Import(f)
}

// Import reads CSV data (header row first) and replaces the properties
// table. Unknown header columns are skipped with a warning; at least one
// known dataset column is required.
func (im *Importer) Import(r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Map known columns to their positions in the file.
	var columns []string
	var indices []int
	for i, name := range header {
		name = strings.TrimSpace(name)
		if !database.KnownColumn(name) {
			log.Printf("Skipping unknown dataset column %q", name)
			continue
		}
		columns = append(columns, name)
		indices = append(indices, i)
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("no known dataset columns in CSV header")
	}

	count := 0
	err = database.Transaction(im.db, func(tx *sql.Tx) error {
		if err := database.CreatePropertiesTable(tx, columns); err != nil {
			return err
		}

		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
		quoted := make([]string, len(columns))
		for i, col := range columns {
			quoted[i] = fmt.Sprintf("%q", col)
		}
		stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
			database.PropertiesTable, strings.Join(quoted, ", "), placeholders))
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read CSV row %d: %w", count+2, err)
			}

			args := make([]interface{}, len(columns))
			for i, idx := range indices {
				args[i], err = parseValue(columns[i], record[idx])
				if err != nil {
					return fmt.Errorf("row %d column %s: %w", count+2, columns[i], err)
				}
			}
			if _, err := stmt.Exec(args...); err != nil {
				return fmt.Errorf("failed to insert row %d: %w", count+2, err)
			}
			count++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("Imported %d properties (%d columns)", count, len(columns))
	return count, nil
}

// parseValue converts a CSV cell per its column affinity. Empty cells
// become NULL.
func parseValue(column, raw string) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if database.IsTextColumn(column) {
		return raw, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q", raw)
	}
	return v, nil
}
