package configs

// Seed controls data loading on startup. Demo inserts a small set of
// random campaign records, useful for local runs. CSVPath, when set,
// loads campaign records from the given CSV file instead.
type Seed struct {
	Demo    bool   `env:"DEMO" envDefault:"false"`
	CSVPath string `env:"CSV_PATH"`
}
