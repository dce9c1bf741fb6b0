package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// AllSectors is the sector label meaning "no sector restriction".
const AllSectors = "Todos os setores"

// Catalog represents the structure of the config.yaml file.
// Option lists are easier to manage in YAML than env vars.
type Catalog struct {
	RoleSuggestions []string `yaml:"role_suggestions"`
	Sectors         []string `yaml:"sectors"`   // First entry is the "all sectors" label
	Locations       []string `yaml:"locations"` // First entry is the default location
	ResultCount     Bounds   `yaml:"result_count"`
	StartPage       Bounds   `yaml:"start_page"`
}

// Bounds is an inclusive integer range with a default value.
type Bounds struct {
	Min     int `yaml:"min" json:"min"`
	Max     int `yaml:"max" json:"max"`
	Default int `yaml:"default" json:"default"`
}

// Contains reports whether n lies within the bounds.
func (b Bounds) Contains(n int) bool {
	return n >= b.Min && n <= b.Max
}

// DefaultCatalog returns the built-in option lists.
func DefaultCatalog() *Catalog {
	return &Catalog{
		RoleSuggestions: []string{"CEO", "CMO", "CTO", "founder", "director", "owner", "presidente", "sócio", "empreendedor"},
		Sectors: []string{
			AllSectors,
			"Tecnologia/SaaS",
			"E-commerce/Varejo",
			"Serviços Financeiros",
			"Saúde/Farmacêutico",
			"Educação/EdTech",
			"Imobiliário/PropTech",
			"Manufatura/Indústria",
			"Consultoria/Serviços",
			"Marketing/Agências",
			"Logística/Transporte",
		},
		Locations: []string{
			"Brasil",
			"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Porto Alegre", "Salvador",
			"Brasília", "Fortaleza", "Recife", "Curitiba", "Manaus",
			"Belém", "Goiânia", "Guarulhos", "Campinas", "São Luís",
			"Maceió", "Campo Grande", "Teresina", "João Pessoa", "Vitória",
		},
		ResultCount: Bounds{Min: 5, Max: 20, Default: 10},
		StartPage:   Bounds{Min: 0, Max: 50, Default: 0},
	}
}

// LoadCatalog loads the YAML catalog file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns the default catalog if the file doesn't exist. Lists missing from
// the file keep their defaults.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadCatalogFile loads a catalog from the given path.
func LoadCatalogFile(path string) (*Catalog, error) {
	cat := DefaultCatalog()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cat, nil
		}
		return nil, err
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(file.RoleSuggestions) > 0 {
		cat.RoleSuggestions = file.RoleSuggestions
	}
	if len(file.Sectors) > 0 {
		cat.Sectors = file.Sectors
	}
	if len(file.Locations) > 0 {
		cat.Locations = file.Locations
	}
	if file.ResultCount != (Bounds{}) {
		cat.ResultCount = file.ResultCount
	}
	if file.StartPage != (Bounds{}) {
		cat.StartPage = file.StartPage
	}

	return cat, nil
}

// Validate checks the catalog for unusable option lists.
func (c *Catalog) Validate() error {
	if len(c.Sectors) == 0 {
		return errors.New("catalog: sectors must not be empty")
	}
	if len(c.Locations) == 0 {
		return errors.New("catalog: locations must not be empty")
	}
	for name, b := range map[string]Bounds{"result_count": c.ResultCount, "start_page": c.StartPage} {
		if b.Min > b.Max {
			return fmt.Errorf("catalog: %s min %d exceeds max %d", name, b.Min, b.Max)
		}
		if !b.Contains(b.Default) {
			return fmt.Errorf("catalog: %s default %d outside [%d,%d]", name, b.Default, b.Min, b.Max)
		}
	}
	if c.StartPage.Min < 0 {
		return errors.New("catalog: start_page min must be >= 0")
	}
	return nil
}

// HasLocation reports whether location is one of the offered locations.
func (c *Catalog) HasLocation(location string) bool {
	return slices.Contains(c.Locations, location)
}

// HasSector reports whether sector is one of the offered sector labels.
func (c *Catalog) HasSector(sector string) bool {
	return slices.Contains(c.Sectors, sector)
}

// DefaultLocation returns the first configured location.
func (c *Catalog) DefaultLocation() string {
	if len(c.Locations) == 0 {
		return ""
	}
	return c.Locations[0]
}

// DefaultSector returns the first configured sector label.
func (c *Catalog) DefaultSector() string {
	if len(c.Sectors) == 0 {
		return AllSectors
	}
	return c.Sectors[0]
}
