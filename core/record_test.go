package core_test

import (
	"fmt"
	"testing"

	"github.com/aneshas/peoplegen/core"
	"github.com/stretchr/testify/assert"
)

func TestShould_Derive_Name_And_Feedback_From_Row_Index(t *testing.T) {
	cases := []int64{1, 2, 42, 99_999, 100_000}

	r := core.NewSeededRand(1)

	for _, i := range cases {
		t.Run(fmt.Sprintf("row %d", i), func(t *testing.T) {
			rec := core.NewRecord(i, r)

			assert.Equal(t, fmt.Sprintf("name_%d", i), rec.Name)
			assert.Equal(t, fmt.Sprintf("Feedback %d", i), rec.Feedback)
		})
	}
}

func TestShould_Draw_Age_Between_1_And_100(t *testing.T) {
	r := core.NewSeededRand(42)

	for i := int64(1); i <= 10_000; i++ {
		rec := core.NewRecord(i, r)

		assert.GreaterOrEqual(t, rec.Age, 1)
		assert.LessOrEqual(t, rec.Age, 100)
	}
}

func TestShould_Draw_Gender_From_The_Enum(t *testing.T) {
	r := core.NewSeededRand(42)

	for i := int64(1); i <= 1_000; i++ {
		rec := core.NewRecord(i, r)

		assert.Contains(t, core.Genders, rec.Gender)
	}
}

func TestShould_Draw_Age_And_Gender_Roughly_Uniformly(t *testing.T) {
	var (
		r       = core.NewSeededRand(1234)
		draws   = int64(60_000)
		ages    = map[int]int{}
		genders = map[string]int{}
	)

	for i := int64(1); i <= draws; i++ {
		rec := core.NewRecord(i, r)

		ages[rec.Age]++
		genders[rec.Gender]++
	}

	// 600 expected per age value, 20k per gender - the bands are generous
	// enough to never flake for a fixed seed
	for age := 1; age <= 100; age++ {
		assert.InDelta(t, 600, ages[age], 300, "age %d", age)
	}

	for _, g := range core.Genders {
		assert.InDelta(t, 20_000, genders[g], 2_000, "gender %s", g)
	}
}

func TestShould_Serialize_Record_Fields_In_Header_Order(t *testing.T) {
	rec := core.Record{
		Name:     "name_7",
		Age:      33,
		Gender:   "Other",
		Feedback: "Feedback 7",
	}

	assert.Equal(t, []string{"name_7", "33", "Other", "Feedback 7"}, rec.Fields())
	assert.Len(t, rec.Fields(), len(core.Header))
}
