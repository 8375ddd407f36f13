package output

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pit2015/paraphrase/pair"
)

// Predictions are the scores of a test set, to be written to Path.
type Predictions struct {
	Path      string
	Scores    []float64
	Threshold float64
}

// WritePredictions writes a line per score: the paraphrase decision at
// threshold, a tab, and the score limited to [0, 1] with four decimals.
func WritePredictions(w io.Writer, scores []float64, threshold float64) error {
	bw := bufio.NewWriter(w)
	for _, s := range scores {
		if _, err := fmt.Fprintf(bw, "%t\t%.4f\n", pair.IsParaphrase(s, threshold), pair.Clamp(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write writes the predictions to their path.
func (p Predictions) Write() error {
	f, err := os.Create(p.Path)
	if err != nil {
		return err
	}
	if err := WritePredictions(f, p.Scores, p.Threshold); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
