package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/aneshas/peoplegen"
	"github.com/aneshas/peoplegen/internal/config"
	"github.com/schollz/progressbar/v3"
)

var (
	rows     = flag.Int64("rows", 0, "Number of data rows to generate")
	out      = flag.String("out", "", "Path of the generated csv file")
	seed     = flag.Int64("seed", -1, "Fixed random seed (negative means unseeded)")
	progress = flag.Bool("progress", false, "Show a progress bar while generating")
)

func main() {
	cfg := config.MustLoad()

	if !flag.Parsed() {
		flag.Parse()
	}

	// flags beat config file / env values, but only when actually set
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "out":
			cfg.Out = *out
		case "seed":
			cfg.Seed = *seed
		}
	})

	opts := []peoplegen.Option{
		peoplegen.WithRows(cfg.Rows),
		peoplegen.WithOutFile(cfg.Out),
	}

	if cfg.Seeded() {
		opts = append(opts, peoplegen.WithSeed(uint64(cfg.Seed)))
	}

	if *progress {
		bar := progressbar.Default(cfg.Rows)

		opts = append(opts, peoplegen.WithProgress(func(int64) {
			_ = bar.Add(1)
		}))
	}

	sum, err := peoplegen.Generate(opts...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sum)
}
