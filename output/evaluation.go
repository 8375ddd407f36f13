// Package output provides different formats of output for experiments.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"sort"
	"strconv"
)

// EvaluationFormatter is used in an experiment to output evaluation results,
// keyed by dataset and then by measurement.
type EvaluationFormatter func(map[string]map[string]float64) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs one row per dataset with a column per
// measurement, both in sorted order.
func CsvEvaluationFormatter(results map[string]map[string]float64) (string, error) {
	var datasets []string
	measures := map[string]bool{}
	for dataset, scores := range results {
		datasets = append(datasets, dataset)
		for m := range scores {
			measures[m] = true
		}
	}
	sort.Strings(datasets)
	headers := make([]string, 0, len(measures))
	for m := range measures {
		headers = append(headers, m)
	}
	sort.Strings(headers)

	data := make([][]float64, len(headers))
	for i, h := range headers {
		data[i] = make([]float64, len(datasets))
		for j, d := range datasets {
			data[i][j] = results[d][h]
		}
	}
	return csvTable("Dataset", datasets, headers, data)
}

func csvTable(corner string, rows, headers []string, data [][]float64) (string, error) {
	b := bytes.NewBufferString("")
	w := csv.NewWriter(b)
	h := []string{corner}
	h = append(h, headers...)
	if err := w.Write(h); err != nil {
		return "", err
	}
	for j, row := range rows {
		record := make([]string, len(data)+1)
		record[0] = row
		for i := range data {
			record[i+1] = strconv.FormatFloat(data[i][j], 'f', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
