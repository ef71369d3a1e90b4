package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/internal/validation"
)

type minPolyResult struct {
	Element    string `json:"element"`
	Polynomial string `json:"polynomial"`
	Coeffs     []int  `json:"coeffs,omitempty"`
	Positions  []int  `json:"positions,omitempty"`
	Degree     int    `json:"degree"`
	Field      int    `json:"field"`
}

func NewMinPolyCommand() *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "minpoly [element]",
		Short: "Find the minimal polynomial of an element",
		Long: `Find the minimal polynomial of a field element: the lowest-degree
monic polynomial over GF(2) that has the element as a root. Its degree
equals the number of conjugates of the element.

By default the polynomial is printed as a coefficient vector, most
significant coefficient first. With --positions it is printed as the
positions of the nonzero coefficients, the form used in Appendix B of
Lin and Costello.`,
		Example: `  # The primitive element's minimal polynomial is the defining polynomial
  galois minpoly a --field 8

  # Positions form
  galois minpoly a^3 --field 16 --positions`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("positions") {
				positions = positionsDefault()
			}

			e, err := validation.ParseElement(args[0], f)
			if err != nil {
				return err
			}

			coeffs, err := e.MinPoly()
			if err != nil {
				return err
			}

			result := minPolyResult{
				Element:    e.String(),
				Polynomial: polyString(coeffs),
				Degree:     len(coeffs) - 1,
				Field:      f.Order(),
			}
			if positions {
				pos, err := e.MinPolyPositions()
				if err != nil {
					return err
				}
				result.Positions = pos
			} else {
				result.Coeffs = coeffs
			}

			if jsonOutput(cmd) {
				return printJSON(result)
			}

			bold := color.New(color.Bold)
			fmt.Printf("%s: minimal polynomial of %s is ", f, displayElement(e, uiConfig()))
			bold.Println(result.Polynomial)
			if positions {
				fmt.Printf("  positions: %v\n", result.Positions)
			} else {
				fmt.Printf("  coeffs: %v\n", result.Coeffs)
			}

			return nil
		},
	}

	addFieldFlags(cmd)
	cmd.Flags().BoolVar(&positions, "positions", false, "Print nonzero coefficient positions instead of the coefficient vector")

	return cmd
}
