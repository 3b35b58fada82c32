package dataset

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes one continuous column.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation
	Min    float64
	Max    float64
}

// LevelCount is one categorical level and its frequency.
type LevelCount struct {
	Level string
	Count int
}

// CategoricalSummary describes one categorical column, levels sorted by name.
type CategoricalSummary struct {
	Column string
	Levels []LevelCount
}

// Summary computes descriptive statistics for every column, the way the
// exploratory tables present them: continuous columns get count/mean/std/
// min/max, categorical columns get per-level counts.
func (d *Dataset) Summary() ([]ColumnSummary, []CategoricalSummary) {
	var continuous []ColumnSummary
	for _, name := range ContinuousFeatures() {
		values, err := d.Column(name)
		if err != nil || len(values) == 0 {
			continue
		}
		mean, std := stat.MeanStdDev(values, nil)
		continuous = append(continuous, ColumnSummary{
			Column: name,
			Count:  len(values),
			Mean:   mean,
			Std:    std,
			Min:    floats.Min(values),
			Max:    floats.Max(values),
		})
	}

	categoricalCols := []struct {
		name  string
		value func(Record) string
	}{
		{ColGender, func(r Record) string { return r.Gender }},
		{ColEverMarried, func(r Record) string { return r.EverMarried }},
		{ColGraduated, func(r Record) string { return r.Graduated }},
		{ColProfession, func(r Record) string { return r.Profession }},
		{ColSpendingScore, func(r Record) string { return r.SpendingScore.String() }},
		{ColVar1, func(r Record) string { return r.Var1 }},
		{ColSegmentation, func(r Record) string { return r.Segmentation }},
	}

	var categorical []CategoricalSummary
	for _, col := range categoricalCols {
		counts := make(map[string]int)
		for _, rec := range d.Records {
			counts[col.value(rec)]++
		}
		levels := make([]LevelCount, 0, len(counts))
		for level, count := range counts {
			levels = append(levels, LevelCount{Level: level, Count: count})
		}
		sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })
		categorical = append(categorical, CategoricalSummary{Column: col.name, Levels: levels})
	}
	return continuous, categorical
}
