package repository

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/invierte-coyoacan/invest-backend-go/internal/database"
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/stats"
)

// MissingColumnsError reports every required dataset column that could not
// be found or derived. The load is fatal; there is no partial-dataset
// fallback.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Columns, ", "))
}

// PropertyRepository reads the prepared property dataset from the sqlite
// store.
type PropertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// LoadAll reads the full property table. Columns are resolved by name via
// the table schema; valor_estimado and cal_inv are derived row-wise when
// absent (unit land value × land area, and investment index × 10 rounded to
// one decimal). If any of the required columns cannot be satisfied directly
// or derivably, the complete missing list comes back as a
// *MissingColumnsError.
func (r *PropertyRepository) LoadAll() ([]models.Property, error) {
	present, err := r.tableColumns()
	if err != nil {
		return nil, err
	}

	if missing := missingColumns(present); len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	selected := make([]string, 0, len(models.RequiredColumns))
	for _, col := range models.RequiredColumns {
		if present[col] {
			selected = append(selected, fmt.Sprintf("%q", col))
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %q",
		strings.Join(selected, ", "), database.PropertiesTable)
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var props []models.Property
	for rows.Next() {
		p, err := scanProperty(rows, present)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}

		if !present["valor_estimado"] {
			p.EstimatedValue = p.UnitLandValue * p.LandArea
		}
		if !present["cal_inv"] {
			p.InvestmentScore = stats.Round(p.InvestmentIndex*10, 1)
		}

		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	return props, nil
}

// tableColumns returns the set of column names of the properties table.
func (r *PropertyRepository) tableColumns() (map[string]bool, error) {
	rows, err := r.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", database.PropertiesTable))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect properties schema: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan schema row: %w", err)
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	return present, nil
}

// missingColumns lists every required column that is neither present nor
// derivable from present ones.
func missingColumns(present map[string]bool) []string {
	var missing []string
	for _, col := range models.RequiredColumns {
		if present[col] {
			continue
		}
		switch col {
		case "valor_estimado":
			if present["valor_unitario_suelo"] && present["superficie_terreno"] {
				continue
			}
		case "cal_inv":
			if present["indice_inversion"] {
				continue
			}
		}
		missing = append(missing, col)
	}
	sort.Strings(missing)
	return missing
}

// scanProperty scans one row, binding only the columns selected by
// LoadAll (the present required columns, in RequiredColumns order).
func scanProperty(rows *sql.Rows, present map[string]bool) (models.Property, error) {
	var p models.Property

	dest := make([]interface{}, 0, len(models.RequiredColumns))
	for _, col := range models.RequiredColumns {
		if !present[col] {
			continue
		}
		switch col {
		case "latitud":
			dest = append(dest, &p.Latitude)
		case "longitud":
			dest = append(dest, &p.Longitude)
		case "categoria_cluster":
			dest = append(dest, &p.Category)
		case "cluster_humano":
			dest = append(dest, &p.ClusterName)
		case "valor_unitario_suelo":
			dest = append(dest, &p.UnitLandValue)
		case "density":
			dest = append(dest, &p.Density)
		case "indice_inversion":
			dest = append(dest, &p.InvestmentIndex)
		case "antiguedad_norm":
			dest = append(dest, &p.NormalizedAge)
		case "superficie_terreno":
			dest = append(dest, &p.LandArea)
		case "superficie_construccion":
			dest = append(dest, &p.BuiltArea)
		case "colonia":
			dest = append(dest, &p.Neighborhood)
		case "alcaldia":
			dest = append(dest, &p.Municipality)
		case "valor_estimado":
			dest = append(dest, &p.EstimatedValue)
		case "cal_inv":
			dest = append(dest, &p.InvestmentScore)
		}
	}

	err := rows.Scan(dest...)
	return p, err
}
