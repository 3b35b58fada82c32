package dataset

import (
	"strconv"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// Type casts raw rows into complete typed records. Rows with any missing
// field are dropped, not imputed; dropping is a filtering policy, not an
// error, and the count of dropped rows is returned for logging. A non-empty
// field that cannot be parsed is malformed input and fails the run.
func Type(raw *RawDataset) (*Dataset, int, error) {
	ds := &Dataset{Records: make([]Record, 0, len(raw.Records))}
	dropped := 0

	for i, rr := range raw.Records {
		if rr.incomplete() {
			dropped++
			continue
		}

		age, err := parseFloat(rr.Age, ColAge, i)
		if err != nil {
			return nil, 0, err
		}
		workExp, err := parseFloat(rr.WorkExperience, ColWorkExperience, i)
		if err != nil {
			return nil, 0, err
		}
		familySize, err := parseFloat(rr.FamilySize, ColFamilySize, i)
		if err != nil {
			return nil, 0, err
		}
		spending, err := ParseSpendingScore(rr.SpendingScore)
		if err != nil {
			return nil, 0, err
		}

		ds.Records = append(ds.Records, Record{
			Gender:         rr.Gender,
			EverMarried:    rr.EverMarried,
			Age:            age,
			Graduated:      rr.Graduated,
			Profession:     rr.Profession,
			WorkExperience: workExp,
			SpendingScore:  spending,
			FamilySize:     familySize,
			Var1:           rr.Var1,
			Segmentation:   rr.Segmentation,
		})
	}
	return ds, dropped, nil
}

func (rr RawRecord) incomplete() bool {
	fields := []string{
		rr.Gender, rr.EverMarried, rr.Age, rr.Graduated, rr.Profession,
		rr.WorkExperience, rr.SpendingScore, rr.FamilySize, rr.Var1,
		rr.Segmentation,
	}
	for _, f := range fields {
		// The source encodes missing values as blanks; some exports write NA.
		if f == "" || f == "NA" {
			return true
		}
	}
	return false
}

func parseFloat(s, column string, row int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewValueError("dataset.Type",
			"row "+strconv.Itoa(row+1)+": column "+column+": not a number: "+s)
	}
	return v, nil
}
