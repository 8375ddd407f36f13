// Package config loads experiment configuration from .properties files, e.g.
//
//	estimator = kmeans
//	kmeans.k = 4
//	kmeans.seed = 7
//
// Any key that is not set takes the value of the baseline system.
package config

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config configures feature extraction, the estimator and the experiment.
type Config struct {
	Estimator string `properties:"estimator,default=regression"`

	Lambda        float64 `properties:"lambda,default=0.8"`
	Threshold     float64 `properties:"threshold,default=0.4"`
	OOVSimilarity float64 `properties:"oov.similarity,default=0"`
	Stemmer       string  `properties:"stemmer,default=porter"`
	Unidecode     bool    `properties:"unidecode,default=false"`

	KMeansK          int    `properties:"kmeans.k,default=4"`
	KMeansIterations int    `properties:"kmeans.iterations,default=100"`
	KMeansSeed       int64  `properties:"kmeans.seed,default=1"`
	Distance         string `properties:"distance,default=euclidean"`

	FuzzyK          int     `properties:"fuzzy.k,default=4"`
	FuzzyFuzziness  float64 `properties:"fuzzy.fuzziness,default=2"`
	FuzzyEpsilon    float64 `properties:"fuzzy.epsilon,default=0.001"`
	FuzzyIterations int     `properties:"fuzzy.iterations,default=100"`

	DBSCANEps    float64 `properties:"dbscan.eps,default=1.1"`
	DBSCANMinPts int     `properties:"dbscan.minpts,default=4"`

	Workers       int  `properties:"workers,default=0"`
	SkipDebatable bool `properties:"skip.debatable,default=true"`
}

// Default is the configuration of the baseline system.
func Default() Config {
	c, err := decode(properties.NewProperties())
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a configuration file. Files ending in .yaml or .yml are read as
// YAML, where nested keys are joined with dots; anything else is read as a
// properties file.
func Load(path string) (Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "could not load configuration %s", path)
		}
		return ParseYAML(b)
	}
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not load configuration %s", path)
	}
	return decode(p)
}

// Parse reads a configuration from the contents of a properties file.
func Parse(s string) (Config, error) {
	p, err := properties.LoadString(s)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not parse configuration")
	}
	return decode(p)
}

// ParseYAML reads a configuration from YAML, e.g.
//
//	estimator: kmeans
//	kmeans:
//	  k: 4
func ParseYAML(b []byte) (Config, error) {
	var m map[string]interface{}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Config{}, errors.Wrap(err, "could not parse configuration")
	}
	p := properties.NewProperties()
	if err := flatten(p, "", m); err != nil {
		return Config{}, err
	}
	return decode(p)
}

func flatten(p *properties.Properties, prefix string, m map[string]interface{}) error {
	for k, v := range m {
		key := k
		if len(prefix) > 0 {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]interface{}); ok {
			if err := flatten(p, key, nested); err != nil {
				return err
			}
			continue
		}
		if _, _, err := p.Set(key, fmt.Sprint(v)); err != nil {
			return errors.Wrapf(err, "could not set %s", key)
		}
	}
	return nil
}

func decode(p *properties.Properties) (Config, error) {
	var c Config
	if err := p.Decode(&c); err != nil {
		return Config{}, errors.Wrap(err, "could not decode configuration")
	}
	return c, c.Validate()
}

// Validate checks that the configured values can be used.
func (c Config) Validate() error {
	switch {
	case c.Lambda < 0 || c.Lambda > 1:
		return fmt.Errorf("lambda must be in [0, 1], got %v", c.Lambda)
	case c.KMeansK < 1:
		return fmt.Errorf("kmeans.k must be at least 1, got %d", c.KMeansK)
	case c.FuzzyK < 1:
		return fmt.Errorf("fuzzy.k must be at least 1, got %d", c.FuzzyK)
	case c.FuzzyFuzziness <= 1:
		return fmt.Errorf("fuzzy.fuzziness must be greater than 1, got %v", c.FuzzyFuzziness)
	case c.FuzzyEpsilon <= 0:
		return fmt.Errorf("fuzzy.epsilon must be positive, got %v", c.FuzzyEpsilon)
	case c.DBSCANEps <= 0:
		return fmt.Errorf("dbscan.eps must be positive, got %v", c.DBSCANEps)
	case c.DBSCANMinPts < 1:
		return fmt.Errorf("dbscan.minpts must be at least 1, got %d", c.DBSCANMinPts)
	case c.KMeansIterations < 1 || c.FuzzyIterations < 1:
		return fmt.Errorf("iterations must be at least 1")
	}
	return nil
}
