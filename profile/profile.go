// Package profile aggregates per-segment descriptive statistics for business
// reporting. It always works on the original, unscaled dataset.
package profile

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/custseg/dataset"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// SegmentProfile is the aggregate view of one segment. Percentages are
// mean(indicator) * 100.
type SegmentProfile struct {
	Segment            string
	Count              int
	MeanAge            float64
	MeanFamilySize     float64
	MeanWorkExperience float64
	PctMale            float64
	PctMarried         float64
	PctGraduated       float64
	PctHighSpending    float64
}

// BySegment computes one profile per distinct Segmentation label, sorted by
// label.
func BySegment(ds *dataset.Dataset) ([]SegmentProfile, error) {
	if ds.Len() == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "profile.BySegment")
	}

	groups := make(map[string][]dataset.Record)
	for _, rec := range ds.Records {
		groups[rec.Segmentation] = append(groups[rec.Segmentation], rec)
	}

	segments := make([]string, 0, len(groups))
	for segment := range groups {
		segments = append(segments, segment)
	}
	sort.Strings(segments)

	profiles := make([]SegmentProfile, 0, len(segments))
	for _, segment := range segments {
		records := groups[segment]
		n := len(records)

		ages := make([]float64, n)
		familySizes := make([]float64, n)
		workExps := make([]float64, n)
		males := make([]float64, n)
		married := make([]float64, n)
		graduated := make([]float64, n)
		highSpending := make([]float64, n)

		for i, rec := range records {
			ages[i] = rec.Age
			familySizes[i] = rec.FamilySize
			workExps[i] = rec.WorkExperience
			males[i] = indicator(rec.Gender == "Male")
			married[i] = indicator(rec.EverMarried == "Yes")
			graduated[i] = indicator(rec.Graduated == "Yes")
			highSpending[i] = indicator(rec.SpendingScore == dataset.SpendingHigh)
		}

		profiles = append(profiles, SegmentProfile{
			Segment:            segment,
			Count:              n,
			MeanAge:            stat.Mean(ages, nil),
			MeanFamilySize:     stat.Mean(familySizes, nil),
			MeanWorkExperience: stat.Mean(workExps, nil),
			PctMale:            stat.Mean(males, nil) * 100,
			PctMarried:         stat.Mean(married, nil) * 100,
			PctGraduated:       stat.Mean(graduated, nil) * 100,
			PctHighSpending:    stat.Mean(highSpending, nil) * 100,
		})
	}
	return profiles, nil
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
