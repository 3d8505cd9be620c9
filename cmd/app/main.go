package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/0x0FACED/go-voronoi/static"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type server struct {
	cfg config
	log *zap.Logger
}

// tessellate builds the diagram for one request and returns it along with the
// engine log collected while building it.
func (s *server) tessellate(r *http.Request) (*voronoi.Diagram, *logger.ZapLogger, error) {
	cfg := s.cfg.fromRequest(r)
	width, height := float64(cfg.Width), float64(cfg.Height)

	var stations []voronoi.Vertex
	if cfg.Random {
		stations = generateRandStations(cfg.Sites, width, height, cfg.Seed)
	} else {
		stations = generateFixStations(cfg.Sites, width, height)
	}

	engineLog := logger.New(zapcore.DebugLevel)
	d, err := voronoi.Tessellate(stations, 0, 0, width, height, voronoi.WithLogger(engineLog))
	if err != nil {
		return nil, engineLog, err
	}

	s.log.Info("[app] Diagram built",
		zap.Int("sites", len(d.Sites)),
		zap.Int("edges", len(d.Edges)),
		zap.Bool("random", cfg.Random),
		zap.Int64("seed", cfg.Seed),
	)
	return d, engineLog, nil
}

// diagramHandler serves the page with the chart, the parameter form and the
// engine log.
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	d, engineLog, err := s.tessellate(r)
	if err != nil {
		s.log.Error("[app] Tessellation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fmt.Fprintln(w, static.Part1)

	if err := diagramToEcharts(d).Render(w); err != nil {
		s.log.Error("[app] Chart rendering failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, engineLog.HTML())
	fmt.Fprintln(w, static.Part3)
}

func (s *server) svgHandler(w http.ResponseWriter, r *http.Request) {
	d, _, err := s.tessellate(r)
	if err != nil {
		s.log.Error("[app] Tessellation failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	renderSVG(w, d)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	s := &server{cfg: cfg, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)
	mux.HandleFunc("/svg", s.svgHandler)

	log.Info("[app] Server started", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatal("[app] ListenAndServe failed", zap.Error(err))
	}
}
