package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

var (
	// ErrInvalidRowCount is thrown when attempting to generate less than one row
	ErrInvalidRowCount = errors.New("peoplegen: row count should be a positive integer")

	// ErrInvalidOutFile is thrown when the output file path is empty
	ErrInvalidOutFile = errors.New("peoplegen: output file path should not be empty")
)

// InMemoryOut represents a magic value which can be used instead of the
// output file path in order to write to an in memory file system instead of disk
const InMemoryOut = "in:mem:csv"

// FS represents a file system interface
type FS interface {
	// Create should create (or truncate) the named output file for writing
	Create(string) (File, error)
}

// File represents a single fs output file
type File interface {
	io.WriteCloser
}

// DefaultConfig represents default peoplegen config
// A run with these values reproduces the shape of the original dataset
var DefaultConfig = Config{
	Rows:    100_000,
	OutFile: "people.csv",
}

// Config represents peoplegen config
type Config struct {
	Rows     int64
	OutFile  string
	Progress func(written int64)
}

// Generator produces the synthetic people dataset and writes it out as csv
type Generator struct {
	cfg  Config
	fs   FS
	rand Rand
}

// NewGenerator instantiates a new generator with the provided FS as
// the output mechanism and r as the source of randomness
func NewGenerator(fs FS, r Rand, cfg Config) (*Generator, error) {
	if cfg.Rows < 1 {
		return nil, ErrInvalidRowCount
	}

	if cfg.OutFile == "" {
		return nil, ErrInvalidOutFile
	}

	return &Generator{
		cfg:  cfg,
		fs:   fs,
		rand: r,
	}, nil
}

// Run writes the header row followed by cfg.Rows data rows in ascending
// index order and reports what was written.
// Any io error aborts the run as is - a partially written file is left
// behind for the caller to dispose of.
func (g *Generator) Run() (Summary, error) {
	f, err := g.fs.Create(g.cfg.OutFile)
	if err != nil {
		return Summary{}, err
	}

	err = g.writeAll(f)

	cerr := f.Close()

	if err != nil {
		return Summary{}, err
	}

	if cerr != nil {
		return Summary{}, cerr
	}

	return Summary{
		Rows: g.cfg.Rows,
		Path: g.cfg.OutFile,
	}, nil
}

func (g *Generator) writeAll(f File) error {
	w := csv.NewWriter(f)

	err := w.Write(Header)
	if err != nil {
		return err
	}

	for i := int64(1); i <= g.cfg.Rows; i++ {
		err = w.Write(NewRecord(i, g.rand).Fields())
		if err != nil {
			return err
		}

		if g.cfg.Progress != nil {
			g.cfg.Progress(i)
		}
	}

	w.Flush()

	return w.Error()
}

// Summary represents the result of a successful run
type Summary struct {
	Rows int64  `json:"rows"`
	Path string `json:"path"`
}

// String renders the human readable confirmation line, eg.
// "people.csv generated with 100,000 rows"
func (s Summary) String() string {
	return fmt.Sprintf("%s generated with %s rows", s.Path, humanize.Comma(s.Rows))
}
