package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/internal/validation"
)

type vecResult struct {
	Element string `json:"element"`
	Vector  []int  `json:"vector"`
	Field   int    `json:"field"`
}

func NewVecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vec [element]",
		Short: "Show the vector representation of an element",
		Long: `Show the polynomial-basis coefficient vector of a field element,
most significant coefficient first. The vector has m bits for GF(2^m).`,
		Example: `  # a^4 in GF(16) reduces to x + 1
  galois vec a^4 --field 16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}

			e, err := validation.ParseElement(args[0], f)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				return printJSON(vecResult{
					Element: e.String(),
					Vector:  e.Vec(),
					Field:   f.Order(),
				})
			}

			bold := color.New(color.Bold)
			fmt.Printf("%s: %s = ", f, e)
			bold.Println(vecString(e.Vec()))

			return nil
		},
	}

	addFieldFlags(cmd)

	return cmd
}
