// Package render prints dispatch tables and play results to the console.
package render

import (
	"errors"
	"fmt"
	"github.com/go-leo/double-dispatch/animal"
	"github.com/go-leo/double-dispatch/dispatch"
	"github.com/go-leo/double-dispatch/internal/config"
	"github.com/gookit/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"io"
)

const (
	played  = "plays"
	missing = "-"
)

var (
	pairStyle    = color.New(color.FgCyan)
	playedStyle  = color.New(color.FgGreen)
	missingStyle = color.New(color.FgGray)
	errorStyle   = color.New(color.FgRed, color.OpBold)
)

type cellJSON struct {
	First  animal.Species `json:"first"`
	Second animal.Species `json:"second"`
	Plays  bool           `json:"plays"`
}

// Renderer writes in one of the config output formats.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	output string
}

func New(out, errOut io.Writer, output string) *Renderer {
	return &Renderer{out: out, errOut: errOut, output: output}
}

// Pairs lists the registered pairs of the table, ordered by species.
func (r *Renderer) Pairs(table *animal.Table) error {
	if r.output == config.OutputJSON {
		data, err := table.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	}
	for _, pair := range table.SortedPairs(animal.PairLess) {
		line := pair.String()
		if r.output == config.OutputColor {
			line = pairStyle.Render(line)
		}
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Matrix shows, for every ordered pair of species, whether the table can play it.
// Plain and colour output draw a table with the first species as rows and the
// second as columns; JSON output lists one cell per pair in the same order.
func (r *Renderer) Matrix(table *animal.Table, species []animal.Species) error {
	if r.output == config.OutputJSON {
		cells := make([]cellJSON, 0, len(species)*len(species))
		for _, first := range species {
			for _, second := range species {
				cells = append(cells, cellJSON{
					First:  first,
					Second: second,
					Plays:  table.Has(dispatch.PairOf(first, second)),
				})
			}
		}
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(map[string][]cellJSON{"matrix": cells})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	}

	w := tablewriter.NewWriter(r.out)
	w.SetHeader(append([]string{"first \\ second"}, lo.Map(species, func(s animal.Species, _ int) string {
		return s.String()
	})...))
	w.SetAutoFormatHeaders(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, first := range species {
		row := []string{first.String()}
		for _, second := range species {
			row = append(row, r.cell(table.Has(dispatch.PairOf(first, second))))
		}
		w.Append(row)
	}
	w.Render()
	return nil
}

func (r *Renderer) cell(plays bool) string {
	if r.output != config.OutputColor {
		return lo.Ternary(plays, played, missing)
	}
	return lo.Ternary(plays, playedStyle.Render(played), missingStyle.Render(missing))
}

// Error reports err to the error writer. A missing dispatching function is
// printed as such, anything else with its message.
func (r *Renderer) Error(err error) {
	msg := err.Error()
	var notFound *dispatch.NotFoundError[animal.Species]
	if errors.As(err, &notFound) {
		msg = fmt.Sprintf("No dispatching function for %s and %s!", notFound.First, notFound.Second)
	}
	if r.output == config.OutputColor {
		msg = errorStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}
