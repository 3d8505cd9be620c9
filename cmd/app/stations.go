package main

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
)

// generateRandStations scatters n sites uniformly over the width x height area.
func generateRandStations(n int, width, height float64, seed int64) []voronoi.Vertex {
	rnd := rand.New(rand.NewSource(seed))
	stations := make([]voronoi.Vertex, n)
	for i := range stations {
		stations[i] = voronoi.Vertex{
			X: math.Round(rnd.Float64() * width),
			Y: math.Round(rnd.Float64() * height),
		}
	}
	return stations
}

// generateFixStations places n sites at the centers of a near-square grid.
func generateFixStations(n int, width, height float64) []voronoi.Vertex {
	if n <= 0 {
		return nil
	}
	stations := make([]voronoi.Vertex, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows && len(stations) < n; i++ {
		for j := 0; j < cols && len(stations) < n; j++ {
			stations = append(stations, voronoi.Vertex{
				X: xStep/2 + float64(j)*xStep,
				Y: yStep/2 + float64(i)*yStep,
			})
		}
	}
	return stations
}
