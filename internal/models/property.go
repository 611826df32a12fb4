package models

// Property represents one geocoded cadastral parcel from the prepared
// Coyoacán dataset. Records are immutable once loaded; column names on the
// wire and in storage keep the dataset's original Spanish identifiers.
type Property struct {
	// Identity / location
	Latitude     float64 `json:"latitud" db:"latitud"`
	Longitude    float64 `json:"longitud" db:"longitud"`
	Neighborhood string  `json:"colonia" db:"colonia"`
	Municipality string  `json:"alcaldia" db:"alcaldia"` // constant in this dataset

	// Classification (assigned by the upstream clustering step)
	Category    string `json:"categoria_cluster" db:"categoria_cluster"`
	ClusterName string `json:"cluster_humano" db:"cluster_humano"`

	// Physical, square meters
	LandArea  float64 `json:"superficie_terreno" db:"superficie_terreno"`
	BuiltArea float64 `json:"superficie_construccion" db:"superficie_construccion"`

	// Valuation
	UnitLandValue  float64 `json:"valor_unitario_suelo" db:"valor_unitario_suelo"` // currency per m²
	EstimatedValue float64 `json:"valor_estimado" db:"valor_estimado"`

	// Investment signal
	InvestmentIndex float64 `json:"indice_inversion" db:"indice_inversion"` // raw index
	InvestmentScore float64 `json:"cal_inv" db:"cal_inv"`                   // 0-10 scale

	// Derived auxiliaries
	Density       float64 `json:"density" db:"density"`
	NormalizedAge float64 `json:"antiguedad_norm" db:"antiguedad_norm"`
}

// RequiredColumns lists the 14 dataset columns the loader must satisfy,
// directly or by derivation, before anything is served.
var RequiredColumns = []string{
	"latitud", "longitud",
	"categoria_cluster", "cluster_humano",
	"valor_unitario_suelo", "density",
	"indice_inversion", "antiguedad_norm",
	"superficie_terreno", "superficie_construccion",
	"colonia", "alcaldia", "valor_estimado",
	"cal_inv",
}
