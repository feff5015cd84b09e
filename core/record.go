package core

import "strconv"

// Genders enumerates the values the gender field is drawn from
var Genders = []string{"Male", "Female", "Other"}

// Header names the output csv columns in serialization order
var Header = []string{"name", "age", "gender", "feedback"}

const (
	minAge = 1
	maxAge = 100
)

// Record represents a single synthesized person row
type Record struct {
	Name     string
	Age      int
	Gender   string
	Feedback string
}

// NewRecord synthesizes the record for the given one based row index
// Name and feedback are derived from the index (and are therefore unique per
// row) while age and gender are drawn from r independently of any other row
func NewRecord(i int64, r Rand) Record {
	n := strconv.FormatInt(i, 10)

	return Record{
		Name:     "name_" + n,
		Age:      minAge + r.IntN(maxAge-minAge+1),
		Gender:   Genders[r.IntN(len(Genders))],
		Feedback: "Feedback " + n,
	}
}

// Fields serializes the record to its csv column values in header order
func (rec Record) Fields() []string {
	return []string{
		rec.Name,
		strconv.Itoa(rec.Age),
		rec.Gender,
		rec.Feedback,
	}
}
