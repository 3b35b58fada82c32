package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/YuminosukeSato/custseg/classifier"
	"github.com/YuminosukeSato/custseg/dataset"
)

func TestImportanceBar(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "importance.png")

	imps := []classifier.Importance{
		{Feature: "Age", Score: 0.6},
		{Feature: "Family_Size", Score: 0.3},
		{Feature: "Work_Experience", Score: 0.1},
	}
	if err := ImportanceBar(imps, path); err != nil {
		t.Fatalf("ImportanceBar: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestImportanceBarEmpty(t *testing.T) {
	if err := ImportanceBar(nil, "unused.png"); err == nil {
		t.Error("expected error for empty importances")
	}
}

func TestAgeHistograms(t *testing.T) {
	dir := t.TempDir()

	ds := &dataset.Dataset{Records: []dataset.Record{
		{Age: 22, Segmentation: "A"},
		{Age: 35, Segmentation: "A"},
		{Age: 41, Segmentation: "B"},
		{Age: 58, Segmentation: "B"},
		{Age: 63, Segmentation: "B"},
	}}
	if err := AgeHistograms(ds, dir); err != nil {
		t.Fatalf("AgeHistograms: %v", err)
	}

	for _, segment := range []string{"A", "B"} {
		path := filepath.Join(dir, "age_"+segment+".png")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing histogram for segment %s: %v", segment, err)
		}
	}
}

func TestAgeHistogramsEmpty(t *testing.T) {
	if err := AgeHistograms(&dataset.Dataset{}, t.TempDir()); err == nil {
		t.Error("expected error for empty dataset")
	}
}
