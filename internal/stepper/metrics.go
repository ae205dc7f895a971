package stepper

import (
	"hash/fnv"
	"math"
)

// Metrics summarizes one generation.
type Metrics struct {
	Step       int     `json:"step"`
	Population int     `json:"population"`
	Density    float64 `json:"density"`
	Births     int     `json:"births"`
	Deaths     int     `json:"deaths"`
	Delta      int     `json:"delta"`
}

// EnhancedMetrics adds the signals the classifier relies on.
type EnhancedMetrics struct {
	Metrics
	Entropy     float64 `json:"entropy"`
	Fingerprint uint32  `json:"fingerprint"`
}

// Entropy is the binary Shannon entropy of the live fraction p = population/size.
// It ignores spatial arrangement entirely and is 0 when p is 0 or 1.
func Entropy(population, size int) float64 {
	if size <= 0 {
		return 0
	}
	p := float64(population) / float64(size)
	if p <= 0 || p >= 1 {
		return 0
	}
	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}

// Fingerprint hashes the cell buffer with 32-bit FNV-1a. Equal fingerprints
// only suggest equal states.
func Fingerprint(cells []uint8) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(cells)
	return h.Sum32()
}
