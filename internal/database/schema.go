package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// PropertiesTable is the fixed table holding the prepared dataset.
const PropertiesTable = "properties"

// columnTypes maps every dataset column the system understands to its
// sqlite affinity. Derived columns (valor_estimado, cal_inv) may be absent
// from an import; the loader backfills them.
var columnTypes = map[string]string{
	"latitud":                 "REAL",
	"longitud":                "REAL",
	"categoria_cluster":       "TEXT",
	"cluster_humano":          "TEXT",
	"valor_unitario_suelo":    "REAL",
	"density":                 "REAL",
	"indice_inversion":        "REAL",
	"antiguedad_norm":         "REAL",
	"superficie_terreno":      "REAL",
	"superficie_construccion": "REAL",
	"colonia":                 "TEXT",
	"alcaldia":                "TEXT",
	"valor_estimado":          "REAL",
	"cal_inv":                 "REAL",
}

// KnownColumn reports whether a column name belongs to the dataset schema.
func KnownColumn(name string) bool {
	_, ok := columnTypes[name]
	return ok
}

// IsTextColumn reports whether a known column holds text values.
func IsTextColumn(name string) bool {
	return columnTypes[name] == "TEXT"
}

// CreatePropertiesTable drops and recreates the properties table with
// exactly the given columns, which must all be known schema columns. Column
// order follows the caller (normally the import file's header).
func CreatePropertiesTable(tx *sql.Tx, columns []string) error {
	defs := make([]string, 0, len(columns))
	for _, col := range columns {
		typ, ok := columnTypes[col]
		if !ok {
			return fmt.Errorf("unknown dataset column %q", col)
		}
		defs = append(defs, fmt.Sprintf("%q %s", col, typ))
	}
	if len(defs) == 0 {
		return fmt.Errorf("no dataset columns to create")
	}

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", PropertiesTable)); err != nil {
		return fmt.Errorf("failed to drop old properties table: %w", err)
	}

	query := fmt.Sprintf("CREATE TABLE %q (%s)", PropertiesTable, strings.Join(defs, ", "))
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create properties table: %w", err)
	}
	return nil
}
