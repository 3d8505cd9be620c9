package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Site is an input point that owns one cell of the diagram.
type Site struct {
	// ID is the index of the site in the slice passed to Tessellate.
	ID int
	X  float64
	Y  float64
}

func (s *Site) Vertex() Vertex {
	return Vertex{X: s.X, Y: s.Y}
}

// siteRegistry holds the distinct sites of one tessellation.
type siteRegistry struct {
	// sites in input order
	sites []*Site
	// the same sites in sweep order: by Y, then X
	sweepOrder []*Site
}

func newSiteRegistry(points []Vertex, log *logger.ZapLogger) *siteRegistry {
	reg := &siteRegistry{sites: make([]*Site, 0, len(points))}
	seen := make(map[Vertex]*Site, len(points))

	for id, p := range points {
		if !p.isFinite() {
			log.Warn("[sites] Non-finite site skipped", zap.Int("id", id), zap.Stringer("site", p))
			continue
		}
		if first, ok := seen[p]; ok {
			log.Warn("[sites] Duplicate site merged", zap.Int("id", id), zap.Int("into", first.ID), zap.Stringer("site", p))
			continue
		}
		s := &Site{ID: id, X: p.X, Y: p.Y}
		seen[p] = s
		reg.sites = append(reg.sites, s)
	}

	reg.sweepOrder = make([]*Site, len(reg.sites))
	copy(reg.sweepOrder, reg.sites)
	sort.SliceStable(reg.sweepOrder, func(i, j int) bool {
		a, b := reg.sweepOrder[i], reg.sweepOrder[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	log.Debug("[sites] Registry built", zap.Int("input", len(points)), zap.Int("distinct", len(reg.sites)))
	return reg
}

func (r *siteRegistry) len() int {
	return len(r.sites)
}

// nearest returns the site closest to v, or nil if there are no sites.
func (r *siteRegistry) nearest(v Vertex) *Site {
	return nearestSite(r.sites, v)
}

func nearestSite(sites []*Site, v Vertex) *Site {
	var best *Site
	bestDist := 0.0
	for _, s := range sites {
		if s == nil {
			continue
		}
		diff := s.Vertex().point().Sub(v.point())
		d := diff.Dot(diff)
		if best == nil || d < bestDist || (d == bestDist && s.ID < best.ID) {
			best, bestDist = s, d
		}
	}
	return best
}
