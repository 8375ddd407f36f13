// Package cache stores the features extracted from sentence pairs so that
// repeated runs do not recompute them.
package cache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/peterbourgon/diskv"

	"github.com/pit2015/paraphrase/feature"
)

var CacheMissError = errors.New("cache miss error")

// BlockTransform determines how diskv should partition folders.
func BlockTransform(blockSize int) func(string) []string {
	return func(s string) []string {
		var (
			sliceSize = len(s) / blockSize
			pathSlice = make([]string, sliceSize)
		)
		for i := 0; i < sliceSize; i++ {
			from, to := i*blockSize, (i*blockSize)+blockSize
			pathSlice[i] = s[from:to]
		}
		return pathSlice
	}
}

// Key identifies a pair of tagged sentences. The namespace separates features
// computed with different extractor settings.
func Key(namespace, tags1, tags2 string) string {
	d := xxhash.New()
	for _, s := range []string{namespace, tags1, tags2} {
		d.WriteString(s)
		d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// FeaturesToBytes encodes features to bytes.
func FeaturesToBytes(features feature.Features) ([]byte, error) {
	var buff bytes.Buffer
	enc := gob.NewEncoder(&buff)
	err := enc.Encode(features)
	if err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// FeatureCacher models a way to cache (either persistent or not) the features of sentence pairs.
type FeatureCacher interface {
	Get(key string) (feature.Features, error)
	Set(key string, features feature.Features) error
}

// FeatureCache embeds a privately defined feature cacher into a public struct.
type FeatureCache struct {
	FeatureCacher
}

type mapFeatureCache struct {
	sync.RWMutex
	m map[string]feature.Features
}

func (m *mapFeatureCache) Get(key string) (feature.Features, error) {
	m.RLock()
	defer m.RUnlock()
	if f, ok := m.m[key]; ok {
		return f.Copy(), nil
	}
	return nil, CacheMissError
}

func (m *mapFeatureCache) Set(key string, features feature.Features) error {
	m.Lock()
	defer m.Unlock()
	m.m[key] = features.Copy()
	return nil
}

// NewMapFeatureCache creates a feature cache out of a regular go map.
func NewMapFeatureCache() FeatureCache {
	return FeatureCache{&mapFeatureCache{m: make(map[string]feature.Features)}}
}

type diskvFeatureCache struct {
	*diskv.Diskv
}

func (d diskvFeatureCache) Get(key string) (feature.Features, error) {
	b, err := d.Read(key)
	if err != nil {
		return nil, CacheMissError
	}
	dec := gob.NewDecoder(bytes.NewReader(b))
	var f feature.Features
	err = dec.Decode(&f)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d diskvFeatureCache) Set(key string, features feature.Features) error {
	b, err := FeaturesToBytes(features)
	if err != nil {
		return err
	}
	return d.Write(key, b)
}

// NewDiskvFeatureCache creates a new on-disk cache with the specified diskv parameters.
func NewDiskvFeatureCache(dv *diskv.Diskv) FeatureCache {
	return FeatureCache{diskvFeatureCache{dv}}
}

// NewDiskFeatureCache creates an on-disk cache rooted at dir, with keys
// partitioned into folders of two characters.
func NewDiskFeatureCache(dir string) FeatureCache {
	return NewDiskvFeatureCache(diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    BlockTransform(2),
		CacheSizeMax: 1 << 24,
	}))
}
