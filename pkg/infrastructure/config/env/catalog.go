package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type catalogEnv struct {
	SeedDefaults bool   `env:"CATALOG_SEED_DEFAULTS" envDefault:"true"`
	PartsCSV     string `env:"CATALOG_PARTS_CSV"`
	ProductsCSV  string `env:"CATALOG_PRODUCTS_CSV"`
	OutputFormat string `env:"CATALOG_OUTPUT_FORMAT" envDefault:"text"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	switch raw.OutputFormat {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported CATALOG_OUTPUT_FORMAT %q", raw.OutputFormat)
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) SeedDefaults() bool   { return cfg.raw.SeedDefaults }
func (cfg *catalog) PartsCSV() string     { return cfg.raw.PartsCSV }
func (cfg *catalog) ProductsCSV() string  { return cfg.raw.ProductsCSV }
func (cfg *catalog) OutputFormat() string { return cfg.raw.OutputFormat }
