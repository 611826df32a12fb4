package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FallbackDescription is shown for categories without a catalog entry.
const FallbackDescription = "Esta clasificación agrupa propiedades con características similares de ubicación, tamaño y potencial."

// defaultDescriptions carries the built-in short description per category
// cluster, shown above the map when a single category is selected.
var defaultDescriptions = map[string]string{
	"Pequeño en zona de pusvalía media-alta":    "Ideal para renta compacta en zonas con buena demanda.",
	"Antiguo con espacio para construcción":     "Perfecto para remodelar y ampliar, con buena plusvalía.",
	"Conjunto habitacional grande":              "Excelente base para proyectos residenciales a escala.",
	"Moderno pequeña en zona media":             "Buena opción para renta estable o primera vivienda.",
	"Pequeño en zona de alta plusvalía":         "Ubicación top para renta pequeña de alto valor.",
	"Grande y antiguo":                          "Oportunidad para renovación profunda y gran valor de reventa.",
	"Moderno en zona de alta plusvalía":         "Listo para habitar o rentar sin casi invertir.",
	"Grande de alta plusvalía":                  "Actualiza acabados y capitaliza la ubicación privilegiada.",
	"Pequeño antiguo en zona de alta plusvalía": "Ideal para una renovación focalizada con buen retorno.",
	"Mediano en zona de pusvalía media":         "Con mejoras ligeras puedes aumentar su valor.",
}

// Catalog resolves category descriptions. Entries loaded from a YAML file
// override the built-in defaults per key.
type Catalog struct {
	descriptions map[string]string
}

// NewCatalog returns a catalog with the built-in descriptions.
func NewCatalog() *Catalog {
	descriptions := make(map[string]string, len(defaultDescriptions))
	for k, v := range defaultDescriptions {
		descriptions[k] = v
	}
	return &Catalog{descriptions: descriptions}
}

// LoadCatalog builds a catalog from a YAML file mapping category label to
// description, layered over the defaults. An empty path returns the
// defaults unchanged.
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category catalog %s: %w", path, err)
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse category catalog %s: %w", path, err)
	}

	for k, v := range overrides {
		c.descriptions[k] = v
	}
	return c, nil
}

// Describe returns the description for a category label, falling back to
// the generic text for unknown labels.
func (c *Catalog) Describe(category string) string {
	if desc, ok := c.descriptions[category]; ok {
		return desc
	}
	return FallbackDescription
}
