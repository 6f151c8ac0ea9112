package cli

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// tabular is implemented by results that render as a table.
type tabular interface {
	TableHeaders() []string
	TableRows(c *palette) [][]string
}

// palette colours table cells unless colour is off.
type palette struct {
	good, warn, bad *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		good: color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		bad:  color.New(color.FgRed),
	}
	if noColor {
		p.good.DisableColor()
		p.warn.DisableColor()
		p.bad.DisableColor()
	}
	return p
}

// deviation colours an angle error in degrees: within 2° is good, within 8°
// is a warning.
func (p *palette) deviation(errDeg float64) string {
	s := fmt.Sprintf("%+.1f", errDeg)
	switch a := math.Abs(errDeg); {
	case a <= 2:
		return p.good.Sprint(s)
	case a <= 8:
		return p.warn.Sprint(s)
	default:
		return p.bad.Sprint(s)
	}
}

// PrintResult writes data as JSON or, for tabular data, as a table.
func PrintResult(cmd *cobra.Command, data interface{}) error {
	format, noColor := "table", false
	if cliCtx, err := GetCLIContext(cmd); err == nil {
		format, noColor = cliCtx.OutputFormat, cliCtx.NoColor
	}

	t, ok := data.(tabular)
	if format == "json" || !ok {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader(t.TableHeaders())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(t.TableRows(newPalette(noColor)))
	table.Render()
	return nil
}

// PrintError writes a formatted error message to stderr.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
}

func f3(v float64) string { return fmt.Sprintf("%.3f", v) }

//Personal.AI order the ending
