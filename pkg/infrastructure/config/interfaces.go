package config

type Logger interface {
	Level() string
	AsJSON() bool
	File() string
}

type Catalog interface {
	SeedDefaults() bool
	PartsCSV() string
	ProductsCSV() string
	OutputFormat() string
}
