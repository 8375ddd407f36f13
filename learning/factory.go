package learning

import (
	"fmt"

	"github.com/pit2015/paraphrase/config"
)

// Estimators lists the names accepted by New.
var Estimators = []string{"regression", "kmeans", "fuzzykmeans", "dbscan"}

// New creates the estimator with the given name, configured by c.
func New(name string, c config.Config) (Estimator, error) {
	distance, err := DistanceByName(c.Distance)
	if err != nil {
		return nil, err
	}
	switch name {
	case "regression", "":
		return NewRegression(), nil
	case "kmeans":
		measure := KMeansDistance(distance)
		if IsSquaredDistance(c.Distance) {
			measure = KMeansSquaredDistance(distance)
		}
		return NewKMeans(
			KMeansClusters(c.KMeansK),
			KMeansIterations(c.KMeansIterations),
			KMeansSeed(c.KMeansSeed),
			measure,
		), nil
	case "fuzzykmeans":
		return NewFuzzyKMeans(
			FuzzyClusters(c.FuzzyK),
			FuzzyFuzziness(c.FuzzyFuzziness),
			FuzzyEpsilon(c.FuzzyEpsilon),
			FuzzyIterations(c.FuzzyIterations),
			FuzzySeed(c.KMeansSeed),
			FuzzyThreshold(c.Threshold),
			FuzzyDistance(distance),
		), nil
	case "dbscan":
		return NewDBSCAN(
			DBSCANEps(c.DBSCANEps),
			DBSCANMinPts(c.DBSCANMinPts),
			DBSCANDistance(distance),
		), nil
	}
	return nil, fmt.Errorf("unknown estimator %q, expected one of %v", name, Estimators)
}
