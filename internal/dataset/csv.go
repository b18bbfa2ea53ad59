// Package dataset loads numeric CSV datasets into labeled example vectors.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is a collection of feature vectors with one numeric label each.
type Dataset struct {
	Inputs []*mat.VecDense
	Labels []float64
}

// Load reads a numeric CSV file into a Dataset. labelCol is the index of the
// column holding each row's label/target; every other column is a feature.
// hasHeader skips the first line if true. Every row must have the same width.
func Load(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	startRow := 0
	if hasHeader {
		startRow = 1
	}

	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numCols := len(records[startRow])
	if labelCol < 0 || labelCol >= numCols {
		return nil, fmt.Errorf("label column %d out of range for %d columns", labelCol, numCols)
	}

	d := &Dataset{
		Inputs: make([]*mat.VecDense, 0, len(records)-startRow),
		Labels: make([]float64, 0, len(records)-startRow),
	}

	// csv.Reader enforces a uniform field count, so every record is numCols wide.
	for i := startRow; i < len(records); i++ {
		record := records[i]
		features := make([]float64, 0, numCols-1)
		var label float64
		for j, valStr := range record {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			if j == labelCol {
				label = val
			} else {
				features = append(features, val)
			}
		}

		d.Inputs = append(d.Inputs, mat.NewVecDense(len(features), features))
		d.Labels = append(d.Labels, label)
	}

	return d, nil
}

// Len returns the number of examples in the dataset.
func (d *Dataset) Len() int {
	return len(d.Inputs)
}

// Normalize performs min-max normalization on the feature vectors, in place.
// Features with a constant value across the dataset become 0.
func (d *Dataset) Normalize() {
	if len(d.Inputs) == 0 {
		return
	}

	numFeatures := d.Inputs[0].Len()
	min := make([]float64, numFeatures)
	max := make([]float64, numFeatures)
	for i := range min {
		min[i] = d.Inputs[0].AtVec(i)
		max[i] = d.Inputs[0].AtVec(i)
	}

	for _, x := range d.Inputs {
		for i := 0; i < numFeatures; i++ {
			val := x.AtVec(i)
			if val < min[i] {
				min[i] = val
			}
			if val > max[i] {
				max[i] = val
			}
		}
	}

	for _, x := range d.Inputs {
		for i := 0; i < numFeatures; i++ {
			diff := max[i] - min[i]
			if diff != 0 {
				x.SetVec(i, (x.AtVec(i)-min[i])/diff)
			} else {
				x.SetVec(i, 0)
			}
		}
	}
}

// Split splits the dataset into two based on the given ratio (0.0 to 1.0).
// Returns two new Datasets (train, test) sharing the underlying vectors.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	if ratio <= 0 {
		return &Dataset{}, d
	}
	if ratio >= 1 {
		return d, &Dataset{}
	}

	splitIdx := int(float64(len(d.Inputs)) * ratio)

	train := &Dataset{
		Inputs: d.Inputs[:splitIdx],
		Labels: d.Labels[:splitIdx],
	}
	test := &Dataset{
		Inputs: d.Inputs[splitIdx:],
		Labels: d.Labels[splitIdx:],
	}

	return train, test
}
