package cluster

import (
	"math"
	"math/rand"
	"sort"

	"github.com/debjganguly/uhi-backend-go/internal/models"
)

const (
	// HeatZoneCount is the number of clusters used for heat classification
	HeatZoneCount = 3

	maxIterations = 100
	tolerance     = 1e-6
)

// KMeans is a seeded Lloyd's algorithm clusterer
type KMeans struct {
	k   int
	rng *rand.Rand
}

// NewKMeans creates a clusterer with k clusters. The same seed yields
// the same labeling for the same input.
func NewKMeans(k int, seed int64) *KMeans {
	return &KMeans{
		k:   k,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Fit clusters the samples and returns a label per sample along with the
// final centroids. Samples must all have the same dimension.
func (km *KMeans) Fit(samples [][]float64) ([]int, [][]float64) {
	n := len(samples)
	if n == 0 {
		return nil, nil
	}

	dim := len(samples[0])
	centroids := km.initCentroids(samples)
	labels := make([]int, n)

	for iter := 0; iter < maxIterations; iter++ {
		// Assignment step
		for i, s := range samples {
			labels[i] = nearestCentroid(s, centroids)
		}

		// Update step
		next := make([][]float64, km.k)
		counts := make([]int, km.k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, s := range samples {
			c := labels[i]
			counts[c]++
			for d, v := range s {
				next[c][d] += v
			}
		}

		for c := range next {
			if counts[c] == 0 {
				// Reseed an empty cluster to the sample farthest
				// from its current centroid
				next[c] = append([]float64(nil), samples[km.farthestSample(samples, labels, centroids)]...)
				continue
			}
			for d := range next[c] {
				next[c][d] /= float64(counts[c])
			}
		}

		if maxShift(centroids, next) < tolerance {
			centroids = next
			break
		}
		centroids = next
	}

	// Final assignment against the converged centroids
	for i, s := range samples {
		labels[i] = nearestCentroid(s, centroids)
	}

	return labels, centroids
}

// initCentroids seeds the first centroid randomly, then picks each
// remaining centroid via farthest-first traversal. Well-separated groups
// each receive a starting centroid, which keeps Lloyd's out of the
// split-cluster local optima a purely random init can land in.
func (km *KMeans) initCentroids(samples [][]float64) [][]float64 {
	n := len(samples)

	centroids := make([][]float64, 0, km.k)
	centroids = append(centroids, append([]float64(nil), samples[km.rng.Intn(n)]...))

	for len(centroids) < km.k {
		best := 0
		bestDist := -1.0
		for i, s := range samples {
			d := math.MaxFloat64
			for _, c := range centroids {
				if sd := squaredDistance(s, c); sd < d {
					d = sd
				}
			}
			if d > bestDist {
				bestDist = d
				best = i
			}
		}
		centroids = append(centroids, append([]float64(nil), samples[best]...))
	}

	return centroids
}

func (km *KMeans) farthestSample(samples [][]float64, labels []int, centroids [][]float64) int {
	best := 0
	bestDist := -1.0
	for i, s := range samples {
		d := squaredDistance(s, centroids[labels[i]])
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func nearestCentroid(sample []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for c, centroid := range centroids {
		if d := squaredDistance(sample, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return sum
}

func maxShift(prev, next [][]float64) float64 {
	var shift float64
	for c := range prev {
		if d := squaredDistance(prev[c], next[c]); d > shift {
			shift = d
		}
	}
	return shift
}

// DetectHeatZones clusters the points on (LST, NDVI) and assigns each a
// zone in {0, 1, 2}. Cluster labels are remapped by ascending centroid
// temperature so zone 0 is always the coolest group and zone 2 the
// hottest, regardless of centroid initialization order.
func DetectHeatZones(points []models.Point, seed int64) {
	n := len(points)
	if n == 0 {
		return
	}
	if n < HeatZoneCount {
		rankZonesByLST(points)
		return
	}

	samples := make([][]float64, n)
	for i, p := range points {
		samples[i] = []float64{p.LST, p.NDVI}
	}

	km := NewKMeans(HeatZoneCount, seed)
	labels, centroids := km.Fit(samples)

	// Order clusters by centroid LST: index 0 = coolest
	order := make([]int, len(centroids))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return centroids[order[a]][0] < centroids[order[b]][0]
	})

	zoneOf := make(map[int]int, len(order))
	for zone, clusterIdx := range order {
		zoneOf[clusterIdx] = zone
	}

	for i := range points {
		points[i].Zone = zoneOf[labels[i]]
	}
}

// rankZonesByLST is the degenerate path for tiny inputs: order by
// temperature and spread across the zone range.
func rankZonesByLST(points []models.Point) {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return points[idx[a]].LST < points[idx[b]].LST
	})
	for rank, i := range idx {
		points[i].Zone = rank * HeatZoneCount / len(points)
	}
}
