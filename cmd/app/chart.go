package main

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter, d *voronoi.Diagram) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Voronoi tessellation (Fortune)",
			Subtitle:             fmt.Sprintf("%d sites, %d edges", len(d.Sites), len(d.Edges)),
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			Min:  d.Bounds.MinX,
			Max:  d.Bounds.MaxX,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			Min:  d.Bounds.MinY,
			Max:  d.Bounds.MaxY,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// diagramToEcharts draws the sites as a scatter series and overlays one line
// series per edge.
func diagramToEcharts(d *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, d)

	points := make([]opts.ScatterData, 0, len(d.Sites))
	for _, site := range d.Sites {
		points = append(points, opts.ScatterData{
			Name:  fmt.Sprintf("site %d", site.ID),
			Value: []float64{site.X, site.Y},
		})
	}

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, edge := range d.Edges {
		name, color := "Bisectors", "#5470c6"
		if edge.IsBorder() {
			name, color = "Border", "#d3d3d3"
		}

		line := charts.NewLine()
		line.AddSeries(name, []opts.LineData{
			{Value: []float64{edge.Start.X, edge.Start.Y}},
			{Value: []float64{edge.End.X, edge.End.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
				Color: color,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
