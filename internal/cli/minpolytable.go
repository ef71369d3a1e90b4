package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/pkg/gf"
)

type minPolyTableResult struct {
	Field   int                 `json:"field"`
	Entries []minPolyTableEntry `json:"entries"`
}

type minPolyTableEntry struct {
	Power      int    `json:"power"`
	Polynomial string `json:"polynomial"`
	Positions  []int  `json:"positions"`
	Degree     int    `json:"degree"`
}

func NewMinPolyTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minpoly-table",
		Short: "Print the minimal polynomials of a field",
		Long: `Print the distinct minimal polynomials of a field's elements, indexed
by the lowest odd power of the primitive element that is a root. The
output matches the minimal polynomial tables in Appendix B of Lin and
Costello; positions list the nonzero coefficients of each polynomial.`,
		Example: `  galois minpoly-table --field 64`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}

			entries, err := f.MinPolyTable()
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				result := minPolyTableResult{Field: f.Order()}
				for _, entry := range entries {
					result.Entries = append(result.Entries, minPolyTableEntry{
						Power:      entry.Power,
						Polynomial: polyString(entry.Coeffs),
						Positions:  entry.Positions,
						Degree:     entry.OrbitLen,
					})
				}
				return printJSON(result)
			}

			yellow := color.New(color.FgYellow)
			yellow.Printf("Minimal polynomials of %s:\n", f)
			printMinPolyEntries(entries)

			return nil
		},
	}

	addFieldFlags(cmd)

	return cmd
}

// printMinPolyEntries lays the entries out in two columns when the
// terminal is wide enough, one otherwise.
func printMinPolyEntries(entries []gf.MinPolyEntry) {
	cells := make([]string, len(entries))
	for i, entry := range entries {
		cells[i] = fmt.Sprintf("%3d: %-30v", entry.Power, entry.Positions)
	}

	columns := 1
	if terminalWidth() >= 2*len("  : ")+2*30 {
		columns = 2
	}

	for i := 0; i < len(cells); i += columns {
		line := cells[i]
		if columns == 2 && i+1 < len(cells) {
			line += cells[i+1]
		}
		fmt.Println(line)
	}
}
