package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/internal/validation"
)

type conjugatesResult struct {
	Element    string   `json:"element"`
	Conjugates []string `json:"conjugates"`
	OrbitLen   int      `json:"orbit_length"`
	Field      int      `json:"field"`
}

func NewConjugatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conjugates [element]",
		Short: "List the conjugates of an element",
		Long: `List the conjugates of a field element: the orbit e, e^2, e^4, ...
under repeated squaring, which closes back on e after a number of steps
dividing m. All conjugates share the same minimal polynomial.`,
		Example: `  galois conjugates a^3 --field 16`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}

			e, err := validation.ParseElement(args[0], f)
			if err != nil {
				return err
			}

			orbit := e.Conjugates()
			names := make([]string, len(orbit))
			for i, c := range orbit {
				names[i] = c.String()
			}

			if jsonOutput(cmd) {
				return printJSON(conjugatesResult{
					Element:    e.String(),
					Conjugates: names,
					OrbitLen:   len(orbit),
					Field:      f.Order(),
				})
			}

			ui := uiConfig()
			yellow := color.New(color.FgYellow)
			yellow.Printf("Conjugates of %s in %s:\n", e, f)
			for _, c := range orbit {
				fmt.Printf("  %s\n", displayElement(c, ui))
			}
			fmt.Printf("Orbit length: %d\n", len(orbit))

			return nil
		},
	}

	addFieldFlags(cmd)

	return cmd
}
