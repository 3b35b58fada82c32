package profile

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/custseg/dataset"
)

func TestBySegmentHandComputed(t *testing.T) {
	// Two segments, four records, percentages checkable by hand.
	ds := &dataset.Dataset{Records: []dataset.Record{
		{Gender: "Male", EverMarried: "Yes", Age: 20, Graduated: "Yes",
			WorkExperience: 2, SpendingScore: dataset.SpendingHigh, FamilySize: 2, Segmentation: "A"},
		{Gender: "Female", EverMarried: "No", Age: 40, Graduated: "No",
			WorkExperience: 4, SpendingScore: dataset.SpendingLow, FamilySize: 4, Segmentation: "A"},
		{Gender: "Male", EverMarried: "Yes", Age: 60, Graduated: "Yes",
			WorkExperience: 6, SpendingScore: dataset.SpendingAverage, FamilySize: 3, Segmentation: "B"},
		{Gender: "Male", EverMarried: "Yes", Age: 30, Graduated: "No",
			WorkExperience: 0, SpendingScore: dataset.SpendingHigh, FamilySize: 5, Segmentation: "B"},
	}}

	profiles, err := BySegment(ds)
	if err != nil {
		t.Fatalf("BySegment failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}

	a := profiles[0]
	if a.Segment != "A" || a.Count != 2 {
		t.Fatalf("first profile = %+v, want segment A with 2 records", a)
	}
	if a.MeanAge != 30 || a.MeanFamilySize != 3 || a.MeanWorkExperience != 3 {
		t.Errorf("segment A means wrong: %+v", a)
	}
	if a.PctMale != 50 || a.PctMarried != 50 || a.PctGraduated != 50 || a.PctHighSpending != 50 {
		t.Errorf("segment A percentages wrong: %+v", a)
	}

	b := profiles[1]
	if b.Segment != "B" || b.Count != 2 {
		t.Fatalf("second profile = %+v, want segment B with 2 records", b)
	}
	if b.PctMale != 100 || b.PctMarried != 100 {
		t.Errorf("segment B percentages wrong: %+v", b)
	}
	if math.Abs(b.PctGraduated-50) > 1e-12 || math.Abs(b.PctHighSpending-50) > 1e-12 {
		t.Errorf("segment B percentages wrong: %+v", b)
	}
	if b.MeanAge != 45 {
		t.Errorf("segment B mean age = %g, want 45", b.MeanAge)
	}
}

func TestBySegmentSortedBySegment(t *testing.T) {
	ds := &dataset.Dataset{Records: []dataset.Record{
		{Segmentation: "D", Gender: "Male"},
		{Segmentation: "B", Gender: "Male"},
		{Segmentation: "C", Gender: "Male"},
		{Segmentation: "A", Gender: "Male"},
	}}
	profiles, err := BySegment(ds)
	if err != nil {
		t.Fatalf("BySegment failed: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	for i, profile := range profiles {
		if profile.Segment != want[i] {
			t.Fatalf("profiles out of order: %v", profiles)
		}
	}
}

func TestBySegmentEmpty(t *testing.T) {
	if _, err := BySegment(&dataset.Dataset{}); err == nil {
		t.Error("expected error for empty dataset")
	}
}
