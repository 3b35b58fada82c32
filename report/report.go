// Package report renders the charts of the business report from the
// pipeline's structured outputs: the ranked feature-importance bar chart and
// the per-segment age distributions.
package report

import (
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/custseg/classifier"
	"github.com/YuminosukeSato/custseg/dataset"
	"github.com/YuminosukeSato/custseg/pkg/errors"
)

// ImportanceBar writes a horizontal-axis bar chart of the ranked importance
// scores to path.
func ImportanceBar(imps []classifier.Importance, path string) error {
	if len(imps) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "report.ImportanceBar")
	}

	p := plot.New()
	p.Title.Text = "Feature importance"
	p.Y.Label.Text = "normalized score"

	values := make(plotter.Values, len(imps))
	names := make([]string, len(imps))
	for i, imp := range imps {
		values[i] = imp.Score
		names[i] = imp.Feature
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.Wrap(err, "report.ImportanceBar")
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.NewIOError("report.ImportanceBar", path, err)
	}
	return nil
}

// AgeHistograms writes one age histogram per segment into dir, named
// age_<segment>.png.
func AgeHistograms(ds *dataset.Dataset, dir string) error {
	if ds.Len() == 0 {
		return errors.Wrap(errors.ErrEmptyData, "report.AgeHistograms")
	}

	bySegment := make(map[string]plotter.Values)
	for _, rec := range ds.Records {
		bySegment[rec.Segmentation] = append(bySegment[rec.Segmentation], rec.Age)
	}

	for _, segment := range ds.Segments() {
		p := plot.New()
		p.Title.Text = "Age distribution, segment " + segment
		p.X.Label.Text = "age"

		hist, err := plotter.NewHist(bySegment[segment], 10)
		if err != nil {
			return errors.Wrap(err, "report.AgeHistograms")
		}
		p.Add(hist)

		path := filepath.Join(dir, "age_"+segment+".png")
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return errors.NewIOError("report.AgeHistograms", path, err)
		}
	}
	return nil
}
