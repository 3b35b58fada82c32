// Package dataset defines the customer record model and the two ingestion
// stages: loading raw delimited rows and typing them into complete records.
package dataset

import (
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// SpendingScore is an ordered categorical value. The order Low < Average <
// High is fixed and must be preserved: downstream consumers treat it as
// ordinal.
type SpendingScore int

const (
	SpendingLow SpendingScore = iota
	SpendingAverage
	SpendingHigh
)

// ParseSpendingScore maps the source string to its ordinal value.
func ParseSpendingScore(s string) (SpendingScore, error) {
	switch s {
	case "Low":
		return SpendingLow, nil
	case "Average":
		return SpendingAverage, nil
	case "High":
		return SpendingHigh, nil
	}
	return 0, errors.NewValueError("dataset.ParseSpendingScore", "unknown spending score "+s)
}

func (s SpendingScore) String() string {
	switch s {
	case SpendingLow:
		return "Low"
	case SpendingAverage:
		return "Average"
	case SpendingHigh:
		return "High"
	}
	return "Unknown"
}

// Record is one customer with every field present and typed.
type Record struct {
	Gender         string // nominal: Male, Female
	EverMarried    string // nominal boolean-like: Yes, No
	Age            float64
	Graduated      string // nominal boolean-like: Yes, No
	Profession     string // nominal, open set
	WorkExperience float64
	SpendingScore  SpendingScore
	FamilySize     float64
	Var1           string // nominal categorical code
	Segmentation   string // the prediction target
}

// Dataset is an ordered collection of complete records sharing one schema.
type Dataset struct {
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Subset materializes the records at the given row indices, in order.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	records := make([]Record, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(d.Records) {
			return nil, errors.NewValueError("Dataset.Subset", "row index out of range")
		}
		records = append(records, d.Records[idx])
	}
	return &Dataset{Records: records}, nil
}

// ContinuousFeatures lists the continuous feature columns in schema order.
func ContinuousFeatures() []string {
	return []string{ColAge, ColWorkExperience, ColFamilySize}
}

// Column returns the values of a continuous column.
func (d *Dataset) Column(name string) ([]float64, error) {
	values := make([]float64, len(d.Records))
	for i, rec := range d.Records {
		switch name {
		case ColAge:
			values[i] = rec.Age
		case ColWorkExperience:
			values[i] = rec.WorkExperience
		case ColFamilySize:
			values[i] = rec.FamilySize
		default:
			return nil, errors.NewValueError("Dataset.Column", "not a continuous column: "+name)
		}
	}
	return values, nil
}

// Segments returns the distinct Segmentation labels in first-seen order.
func (d *Dataset) Segments() []string {
	seen := make(map[string]bool)
	var segments []string
	for _, rec := range d.Records {
		if !seen[rec.Segmentation] {
			seen[rec.Segmentation] = true
			segments = append(segments, rec.Segmentation)
		}
	}
	return segments
}
