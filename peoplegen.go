package peoplegen

import (
	"github.com/aneshas/peoplegen/core"
	"github.com/aneshas/peoplegen/internal/fs"
)

// Generate synthesizes a fake people dataset and writes it out as csv.
// By default it writes 100,000 data rows (plus a header row) to people.csv
// using an unseeded random source which makes age and gender values differ
// from run to run. The defaults can be changed with config options.
// Magic in:mem:csv value for the output file can be used in order to write
// to an in memory file system which can be used for testing purposes.
func Generate(opts ...Option) (core.Summary, error) {
	cfg := config{
		Config: core.DefaultConfig,
	}

	for _, opt := range opts {
		cfg = opt(cfg)
	}

	var genFS core.FS = fs.NewDisk()

	if cfg.OutFile == core.InMemoryOut {
		genFS = fs.NewInMemory()
	}

	var r core.Rand = core.GoRand{}

	if cfg.seed != nil {
		r = core.NewSeededRand(*cfg.seed)
	}

	g, err := core.NewGenerator(genFS, r, cfg.Config)
	if err != nil {
		return core.Summary{}, err
	}

	return g.Run()
}

type config struct {
	core.Config

	seed *uint64
}

// Option represents peoplegen configuration option
type Option func(config) config

// WithRows configures the number of data rows to generate
func WithRows(rows int64) Option {
	return func(cfg config) config {
		cfg.Rows = rows

		return cfg
	}
}

// WithOutFile configures the location of the output csv file
func WithOutFile(path string) Option {
	return func(cfg config) config {
		cfg.OutFile = path

		return cfg
	}
}

// WithSeed configures a fixed random seed which makes runs reproducible
func WithSeed(seed uint64) Option {
	return func(cfg config) config {
		cfg.seed = &seed

		return cfg
	}
}

// WithProgress configures a callback which is invoked with the number of
// rows written so far, once per row
func WithProgress(fn func(written int64)) Option {
	return func(cfg config) config {
		cfg.Progress = fn

		return cfg
	}
}
