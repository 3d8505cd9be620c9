package main

import (
	"flag"
	"net/http"
	"strconv"
	"time"
)

// config holds the server address and the default diagram parameters.
type config struct {
	Addr   string
	Width  int
	Height int
	Sites  int
	Random bool
	Seed   int64
}

const (
	minSize  = 100
	maxSize  = 5000
	maxSites = 2000
)

func parseFlags(args []string) (config, error) {
	cfg := config{}
	fs := flag.NewFlagSet("app", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", ":8080", "listen address")
	fs.IntVar(&cfg.Width, "width", 1000, "default rectangle width")
	fs.IntVar(&cfg.Height, "height", 1000, "default rectangle height")
	fs.IntVar(&cfg.Sites, "sites", 12, "default number of sites")
	fs.BoolVar(&cfg.Random, "random", false, "scatter sites randomly instead of on a grid")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one per request")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.Width = clamp(cfg.Width, minSize, maxSize)
	cfg.Height = clamp(cfg.Height, minSize, maxSize)
	cfg.Sites = clamp(cfg.Sites, 0, maxSites)
	return cfg, nil
}

// fromRequest overrides the defaults with form values; missing or malformed
// values keep the default.
func (c config) fromRequest(r *http.Request) config {
	if err := r.ParseForm(); err != nil {
		return c
	}
	c.Width = formInt(r, "width", c.Width, minSize, maxSize)
	c.Height = formInt(r, "height", c.Height, minSize, maxSize)
	c.Sites = formInt(r, "stations", c.Sites, 0, maxSites)
	if v := r.FormValue("random"); v != "" {
		c.Random = v == "true" || v == "on"
	}
	if v, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		c.Seed = v
	}
	if c.Random && c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

func formInt(r *http.Request, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil {
		return def
	}
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
