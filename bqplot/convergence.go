package bqplot

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/quadlab/bayesquad/bq"
	"github.com/quadlab/bayesquad/randvar"
)

// ErrNoHistory indicates a nil state or an empty belief history.
var ErrNoHistory = errors.New("bqplot: no belief history to plot")

// ConvergencePlot builds a plot of the belief history: posterior mean per
// update with a ±2σ band. The x axis counts belief updates; entry 0 is
// the uninformed prior. Entries with infinite variance (the prior) are
// drawn without a band.
func ConvergencePlot(state *bq.State) (*plot.Plot, error) {
	if state == nil {
		return nil, ErrNoHistory
	}
	beliefs := append(state.PreviousBeliefs(), state.IntegralBelief())
	if len(beliefs) < 2 {
		return nil, ErrNoHistory
	}

	p := plot.New()
	p.Title.Text = "integral belief convergence"
	p.X.Label.Text = "belief update"
	p.Y.Label.Text = "integral estimate"

	mean := make(plotter.XYs, len(beliefs))
	upper := make(plotter.XYs, 0, len(beliefs))
	lower := make(plotter.XYs, 0, len(beliefs))
	for i, b := range beliefs {
		mean[i] = plotter.XY{X: float64(i), Y: b.Mean}
		if sd := bandWidth(b); !math.IsInf(sd, 1) {
			upper = append(upper, plotter.XY{X: float64(i), Y: b.Mean + sd})
			lower = append(lower, plotter.XY{X: float64(i), Y: b.Mean - sd})
		}
	}

	meanLine, err := plotter.NewLine(mean)
	if err != nil {
		return nil, err
	}
	upperLine, err := plotter.NewLine(upper)
	if err != nil {
		return nil, err
	}
	lowerLine, err := plotter.NewLine(lower)
	if err != nil {
		return nil, err
	}
	upperLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	lowerLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(meanLine, upperLine, lowerLine)
	p.Legend.Add("mean", meanLine)
	p.Legend.Add("±2σ", upperLine)
	return p, nil
}

// SaveConvergencePNG renders the convergence plot to a PNG file.
func SaveConvergencePNG(state *bq.State, path string) error {
	p, err := ConvergencePlot(state)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// bandWidth returns the half-width of the ±2σ band.
func bandWidth(b randvar.Normal) float64 {
	return 2 * b.StdDev()
}
