package dataset

import (
	"strings"
	"testing"

	"github.com/YuminosukeSato/custseg/pkg/errors"
)

const sampleCSV = `ID,Gender,Ever_Married,Age,Graduated,Profession,Work_Experience,Spending_Score,Family_Size,Var_1,Segmentation
462809,Male,No,22,No,Healthcare,1,Low,4,Cat_4,D
462643,Female,Yes,38,Yes,Engineer,,Average,3,Cat_4,A
466315,Female,Yes,67,Yes,Engineer,1,Low,1,Cat_6,B
461735,Male,Yes,67,Yes,Lawyer,0,High,2,Cat_6,B
`

func TestReadParsesRows(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleCSV), "sample.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(ds.Records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(ds.Records))
	}

	first := ds.Records[0]
	if first.Gender != "Male" || first.Age != "22" || first.SpendingScore != "Low" || first.Segmentation != "D" {
		t.Errorf("first record parsed incorrectly: %+v", first)
	}
	// Row 2 has a blank Work_Experience; the loader keeps it raw.
	if ds.Records[1].WorkExperience != "" {
		t.Errorf("expected blank Work_Experience to stay empty, got %q", ds.Records[1].WorkExperience)
	}
}

func TestReadHeaderOrderIndependent(t *testing.T) {
	csv := "Segmentation,Gender,Ever_Married,Age,Graduated,Profession,Work_Experience,Spending_Score,Family_Size,Var_1,ID\n" +
		"A,Female,Yes,30,Yes,Artist,2,Average,2,Cat_3,1\n"
	ds, err := Read(strings.NewReader(csv), "reordered.csv")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ds.Records[0].Segmentation != "A" || ds.Records[0].Gender != "Female" {
		t.Errorf("columns must be located by name, got %+v", ds.Records[0])
	}
}

func TestReadMissingColumns(t *testing.T) {
	csv := "ID,Gender,Age\n1,Male,22\n"
	_, err := Read(strings.NewReader(csv), "bad.csv")
	if err == nil {
		t.Fatal("expected SchemaError for missing columns")
	}
	var schemaErr *errors.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	found := false
	for _, col := range schemaErr.Missing {
		if col == ColSegmentation {
			found = true
		}
	}
	if !found {
		t.Errorf("Missing should include %s, got %v", ColSegmentation, schemaErr.Missing)
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	_, err := Load("testdata/does_not_exist.csv")
	if err == nil {
		t.Fatal("expected IOError for unreadable path")
	}
	var ioErr *errors.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
}

func TestLoadFixture(t *testing.T) {
	ds, err := Load("testdata/customers.csv")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Records) == 0 {
		t.Fatal("fixture should contain records")
	}
}
