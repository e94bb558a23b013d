package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"transect-offset-service/internal/domain"
)

// WriteScatterHTML renders the GPS track and the derived sensor track
// as an HTML scatter chart. Undefined sensor points are skipped.
func WriteScatterHTML(w io.Writer, corrections []domain.Correction, off domain.Offsets, title string) error {
	gps := make([]opts.ScatterData, 0, len(corrections))
	sensor := make([]opts.ScatterData, 0, len(corrections))
	for _, c := range corrections {
		gps = append(gps, opts.ScatterData{Value: []interface{}{c.GPS.X, c.GPS.Y}})
		if c.Sensor.Defined() {
			sensor = append(sensor, opts.ScatterData{Value: []interface{}{c.Sensor.X, c.Sensor.Y}})
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Transect Survey", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("inline=%g lateral=%g points=%d", off.Inline, off.Lateral, len(corrections)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("gps", gps, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))
	scatter.AddSeries("sensor", sensor, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return nil
}
