package importer

import (
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/invierte-coyoacan/invest-backend-go/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

const sampleCSV = `latitud,longitud,categoria_cluster,cluster_humano,valor_unitario_suelo,density,indice_inversion,antiguedad_norm,superficie_terreno,superficie_construccion,colonia,alcaldia
19.34,-99.16,Grande y antiguo,Casona,2000,0.4,0.87,0.9,100,80,Del Carmen,Coyoacán
19.35,-99.14,Conjunto habitacional grande,Unidad,1500,0.8,0.55,0.3,900,750,Ajusco,Coyoacán
`

func TestImportThenLoad(t *testing.T) {
	db := openTestDB(t)

	count, err := New(db).Import(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != 2 {
		t.Fatalf("imported rows: got %d, want 2", count)
	}

	// The loader must see the imported table and backfill the derived
	// columns the CSV does not carry.
	props, err := repository.NewPropertyRepository(db).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll after import: %v", err)
	}
	if len(props) != 2 {
		t.Fatalf("loaded rows: got %d, want 2", len(props))
	}
	if props[0].EstimatedValue != 200_000 {
		t.Errorf("derived valor_estimado: got %v, want 200000", props[0].EstimatedValue)
	}
	if props[0].InvestmentScore != 8.7 {
		t.Errorf("derived cal_inv: got %v, want 8.7", props[0].InvestmentScore)
	}
	if props[1].Neighborhood != "Ajusco" {
		t.Errorf("colonia: got %q, want Ajusco", props[1].Neighborhood)
	}
}

func TestImportSkipsUnknownColumns(t *testing.T) {
	db := openTestDB(t)

	csvData := "colonia,superstition_index\nDel Carmen,13\n"
	count, err := New(db).Import(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if count != 1 {
		t.Fatalf("imported rows: got %d, want 1", count)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("table rows: got %d, want 1", n)
	}
}

func TestImportRejectsHeaderWithNoKnownColumns(t *testing.T) {
	db := openTestDB(t)
	if _, err := New(db).Import(strings.NewReader("foo,bar\n1,2\n")); err == nil {
		t.Error("expected an error for a header with no dataset columns")
	}
}

func TestImportRejectsBadNumericCell(t *testing.T) {
	db := openTestDB(t)
	csvData := "colonia,latitud\nDel Carmen,north-ish\n"
	if _, err := New(db).Import(strings.NewReader(csvData)); err == nil {
		t.Error("expected an error for a non-numeric latitude")
	}

	// The whole import runs in one transaction, so a failed file must not
	// leave a half-replaced table behind.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM properties").Scan(&n); err == nil {
		t.Error("failed import left a properties table behind")
	}
}
