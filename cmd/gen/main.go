package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/jaswdr/faker"
)

var (
	rows = flag.Int("rows", 100_000, "Number of data rows to generate")
	out  = flag.String("out", "people_realistic.csv", "Output csv file path")
)

var genders = []string{"Male", "Female", "Other"}

// Same schema as the main generator but with faker backed values
// instead of index derived ones

func main() {
	flag.Parse()

	f := faker.New()

	file, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}

	defer file.Close()

	w := csv.NewWriter(file)

	err = w.Write([]string{"name", "age", "gender", "feedback"})
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *rows; i++ {
		err = w.Write([]string{
			f.Person().Name(),
			strconv.Itoa(f.IntBetween(1, 100)),
			genders[f.IntBetween(0, len(genders)-1)],
			f.Lorem().Sentence(6),
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		log.Fatal(err)
	}

	log.Printf("%s generated with %d rows", *out, *rows)
}
