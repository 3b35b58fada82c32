package dataset

import (
	"testing"
)

func TestTypeDropsIncompleteRecords(t *testing.T) {
	raw := &RawDataset{Records: []RawRecord{
		{Gender: "Male", EverMarried: "No", Age: "22", Graduated: "No", Profession: "Healthcare",
			WorkExperience: "1", SpendingScore: "Low", FamilySize: "4", Var1: "Cat_4", Segmentation: "D"},
		{Gender: "Female", EverMarried: "Yes", Age: "38", Graduated: "Yes", Profession: "Engineer",
			WorkExperience: "", SpendingScore: "Average", FamilySize: "3", Var1: "Cat_4", Segmentation: "A"},
		{Gender: "Female", EverMarried: "Yes", Age: "67", Graduated: "Yes", Profession: "Engineer",
			WorkExperience: "1", SpendingScore: "Low", FamilySize: "1", Var1: "NA", Segmentation: "B"},
	}}

	ds, dropped, err := Type(raw)
	if err != nil {
		t.Fatalf("Type failed: %v", err)
	}
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if ds.Len() != 1 {
		t.Fatalf("expected 1 complete record, got %d", ds.Len())
	}
	// The complete record passes through value-identical, only retyped.
	rec := ds.Records[0]
	if rec.Gender != "Male" || rec.Age != 22 || rec.WorkExperience != 1 ||
		rec.SpendingScore != SpendingLow || rec.FamilySize != 4 || rec.Segmentation != "D" {
		t.Errorf("complete record changed in value: %+v", rec)
	}
}

func TestTypeMalformedNumber(t *testing.T) {
	raw := &RawDataset{Records: []RawRecord{
		{Gender: "Male", EverMarried: "No", Age: "young", Graduated: "No", Profession: "Healthcare",
			WorkExperience: "1", SpendingScore: "Low", FamilySize: "4", Var1: "Cat_4", Segmentation: "D"},
	}}
	if _, _, err := Type(raw); err == nil {
		t.Fatal("expected error for non-numeric Age")
	}
}

func TestSpendingScoreOrder(t *testing.T) {
	// The ordinal order Low < Average < High is fixed.
	if !(SpendingLow < SpendingAverage && SpendingAverage < SpendingHigh) {
		t.Fatal("spending score order broken")
	}

	tests := []struct {
		in      string
		want    SpendingScore
		wantErr bool
	}{
		{in: "Low", want: SpendingLow},
		{in: "Average", want: SpendingAverage},
		{in: "High", want: SpendingHigh},
		{in: "Extreme", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseSpendingScore(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpendingScore(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSpendingScore(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSubsetAndColumn(t *testing.T) {
	ds := &Dataset{Records: []Record{
		{Age: 20, WorkExperience: 1, FamilySize: 2, Segmentation: "A"},
		{Age: 30, WorkExperience: 2, FamilySize: 3, Segmentation: "B"},
		{Age: 40, WorkExperience: 3, FamilySize: 4, Segmentation: "A"},
	}}

	sub, err := ds.Subset([]int{2, 0})
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if sub.Len() != 2 || sub.Records[0].Age != 40 || sub.Records[1].Age != 20 {
		t.Errorf("Subset order wrong: %+v", sub.Records)
	}

	if _, err := ds.Subset([]int{3}); err == nil {
		t.Error("expected error for out-of-range index")
	}

	ages, err := ds.Column(ColAge)
	if err != nil {
		t.Fatalf("Column failed: %v", err)
	}
	if len(ages) != 3 || ages[1] != 30 {
		t.Errorf("Column(Age) = %v", ages)
	}

	if _, err := ds.Column(ColGender); err == nil {
		t.Error("expected error for non-continuous column")
	}
}

func TestSummary(t *testing.T) {
	ds := &Dataset{Records: []Record{
		{Gender: "Male", Age: 20, WorkExperience: 1, FamilySize: 2, SpendingScore: SpendingLow, Segmentation: "A"},
		{Gender: "Female", Age: 40, WorkExperience: 3, FamilySize: 4, SpendingScore: SpendingHigh, Segmentation: "B"},
	}}

	continuous, categorical := ds.Summary()
	if len(continuous) != 3 {
		t.Fatalf("expected 3 continuous summaries, got %d", len(continuous))
	}
	age := continuous[0]
	if age.Column != ColAge || age.Mean != 30 || age.Min != 20 || age.Max != 40 {
		t.Errorf("Age summary wrong: %+v", age)
	}

	var gender *CategoricalSummary
	for i := range categorical {
		if categorical[i].Column == ColGender {
			gender = &categorical[i]
		}
	}
	if gender == nil {
		t.Fatal("missing Gender summary")
	}
	if len(gender.Levels) != 2 || gender.Levels[0].Level != "Female" || gender.Levels[0].Count != 1 {
		t.Errorf("Gender levels wrong: %+v", gender.Levels)
	}
}
