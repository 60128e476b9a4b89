package surface

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ChartRenderer renders the top-ranked tools as a horizontal bar chart PNG
// for stakeholder presentations. Each bar carries its score as a label.
type ChartRenderer struct {
	TopN int // number of top-ranked tools to plot (default 10)
	DPI  int // raster resolution (default 300)
}

// barFill approximates the viridis mid-range used in the executive deck.
var barFill = color.RGBA{R: 0x31, G: 0x68, B: 0x8e, A: 0xff}

func (r *ChartRenderer) Render(w io.Writer, rep *Report) error {
	topN := r.TopN
	if topN <= 0 {
		topN = 10
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = 300
	}

	tools := rep.Tools
	if len(tools) > topN {
		tools = tools[:topN]
	}
	if len(tools) == 0 {
		return fmt.Errorf("no tools to chart")
	}

	p := plot.New()
	p.Title.Text = "AI Logistics Solutions: Business Fit Ranking\n(ATD Canada-Africa Trade Corridor)"
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = "Weighted Business Fit Score (1-5)"
	p.Y.Label.Text = "Vendor Solution"

	// Row 0 draws at the bottom, so reverse the ranked slice to put the
	// best tool on the top row.
	names := make([]string, len(tools))
	values := make(plotter.Values, len(tools))
	for i, t := range tools {
		row := len(tools) - 1 - i
		names[row] = t.Name
		values[row] = t.BusinessScore
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("building bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barFill
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)

	// Score labels just past the end of each bar.
	labels := make([]string, len(values))
	xys := make(plotter.XYs, len(values))
	var maxScore float64
	for i, v := range values {
		labels[i] = strconv.FormatFloat(v, 'f', 2, 64)
		xys[i] = plotter.XY{X: v + 0.05, Y: float64(i)}
		if v > maxScore {
			maxScore = v
		}
	}
	scoreLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return fmt.Errorf("building labels: %w", err)
	}
	p.Add(scoreLabels)

	// Leave headroom so the labels stay inside the plot area.
	p.X.Min = 0
	p.X.Max = maxScore + 0.5

	canvas := vgimg.NewWith(
		vgimg.UseWH(12*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(canvas))

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
