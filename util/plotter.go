package util

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"festa-server/models/merchant"
	"festa-server/status"
)

// PlotMerchantMap generates an HTML snapshot of the merchant map, one
// scatter series per status class at the given time.
func PlotMerchantMap(merchants []merchant.Merchant, now time.Time, outputPath string) {
	series := map[merchant.Status][]opts.GeoData{}
	for i := range merchants {
		m := &merchants[i]
		result, _ := status.ClassifyAt(m.WeeklySchedule, now)
		series[result.Status] = append(series[result.Status], opts.GeoData{
			Name:  m.MerchantName,
			Value: []float64{m.MerchantLon, m.MerchantLat},
		})
	}

	// Create a new Geo chart.
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Merchant Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true), // Disables interactivity on the map background.
		}),
	)

	for _, s := range []merchant.Status{
		merchant.StatusOpen,
		merchant.StatusClosingSoon,
		merchant.StatusOpeningSoon,
		merchant.StatusClosed,
	} {
		points := series[s]
		if len(points) == 0 {
			continue
		}
		geo.AddSeries(string(s), types.ChartScatter, points,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
			}),
		)
	}

	// Create an HTML file to render the chart.
	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := geo.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Merchant map generated: " + outputPath)
}
