package output

import (
	"encoding/json"
	"strconv"

	"github.com/pit2015/paraphrase/learning"
)

// MeasurementFormatter is used in an experiment to output per-cluster
// measurements in various formats. These methods should not be used directly
// since there are some assumptions made about the inputs; for instance, the
// length of each argument.
type MeasurementFormatter func(rows, headers []string, data [][]float64) (string, error)

// ClusterHeaders name the measurements of ClusterMeasurements.
var ClusterHeaders = []string{"Size", "DominantLabel", "MeanLabel", "Purity", "Entropy"}

// ClusterMeasurements lays out cluster statistics as a column per measurement.
func ClusterMeasurements(clusters []learning.ClusterInfo) (rows, headers []string, data [][]float64) {
	rows = make([]string, len(clusters))
	data = make([][]float64, len(ClusterHeaders))
	for i := range data {
		data[i] = make([]float64, len(clusters))
	}
	for j, c := range clusters {
		rows[j] = strconv.Itoa(j)
		data[0][j] = float64(c.Size)
		data[1][j] = c.DominantLabel
		data[2][j] = c.MeanLabel
		data[3][j] = c.Purity
		data[4][j] = c.Entropy
	}
	return rows, ClusterHeaders, data
}

// JsonMeasurementFormatter outputs results in a JSON format.
func JsonMeasurementFormatter(rows, headers []string, data [][]float64) (string, error) {
	m := map[string]map[string]float64{}
	for j, row := range rows {
		m[row] = map[string]float64{}
		for i, header := range headers {
			m[row][header] = data[i][j]
		}
	}

	v, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvMeasurementFormatter outputs results in CSV format.
func CsvMeasurementFormatter(rows, headers []string, data [][]float64) (string, error) {
	return csvTable("Cluster", rows, headers, data)
}
