package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// Column names of the source schema. The ID column is dropped at load time;
// it identifies rows but carries no signal.
const (
	ColID             = "ID"
	ColGender         = "Gender"
	ColEverMarried    = "Ever_Married"
	ColAge            = "Age"
	ColGraduated      = "Graduated"
	ColProfession     = "Profession"
	ColWorkExperience = "Work_Experience"
	ColSpendingScore  = "Spending_Score"
	ColFamilySize     = "Family_Size"
	ColVar1           = "Var_1"
	ColSegmentation   = "Segmentation"
)

// featureColumns are the columns a RawRecord carries, in schema order.
var featureColumns = []string{
	ColGender, ColEverMarried, ColAge, ColGraduated, ColProfession,
	ColWorkExperience, ColSpendingScore, ColFamilySize, ColVar1,
	ColSegmentation,
}

// RawRecord is one row as read from the source, all fields still strings.
// Empty strings mark missing values.
type RawRecord struct {
	Gender         string
	EverMarried    string
	Age            string
	Graduated      string
	Profession     string
	WorkExperience string
	SpendingScore  string
	FamilySize     string
	Var1           string
	Segmentation   string
}

// RawDataset is the loaded but not yet typed dataset.
type RawDataset struct {
	Records []RawRecord
}

// Load reads a comma-delimited source with a header row. It fails with
// IOError when the source is unreadable or malformed, and with SchemaError
// when the header lacks expected columns.
func Load(path string) (*RawDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("dataset.Load", path, err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses an already opened delimited source. The path is used only in
// error messages.
func Read(r io.Reader, path string) (*RawDataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // length checked against the header below

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewIOError("dataset.Read", path, err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}
	var missing []string
	for _, name := range featureColumns {
		if _, ok := colIdx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewSchemaError("dataset.Read", missing, header)
	}

	field := func(row []string, name string) string {
		idx := colIdx[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	ds := &RawDataset{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewIOError("dataset.Read", path, err)
		}
		ds.Records = append(ds.Records, RawRecord{
			Gender:         field(row, ColGender),
			EverMarried:    field(row, ColEverMarried),
			Age:            field(row, ColAge),
			Graduated:      field(row, ColGraduated),
			Profession:     field(row, ColProfession),
			WorkExperience: field(row, ColWorkExperience),
			SpendingScore:  field(row, ColSpendingScore),
			FamilySize:     field(row, ColFamilySize),
			Var1:           field(row, ColVar1),
			Segmentation:   field(row, ColSegmentation),
		})
	}
	return ds, nil
}
