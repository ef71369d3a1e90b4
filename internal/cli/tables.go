package cli

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/pkg/gf"
)

type cayleyTableResult struct {
	Field     int        `json:"field"`
	Operation string     `json:"operation"`
	Elements  []string   `json:"elements"`
	Table     [][]string `json:"table"`
}

func NewAddTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-table",
		Short: "Print the addition table of a field",
		Long: `Print the Cayley table of addition over the nonzero elements of the
field. Addition and subtraction are the same operation in characteristic
2, so the table is symmetric with a zero diagonal.`,
		Example: `  galois add-table --field 16`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}
			return renderCayleyTable(cmd, f, "+", f.AddTable())
		},
	}

	addFieldFlags(cmd)

	return cmd
}

func NewMulTableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul-table",
		Short: "Print the multiplication table of a field",
		Long: `Print the Cayley table of multiplication over the nonzero elements of
the field. In the power representation multiplication adds exponents
modulo q-1, so each row is a rotation of the first.`,
		Example: `  galois mul-table --field 16`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveField(cmd)
			if err != nil {
				return err
			}
			return renderCayleyTable(cmd, f, "*", f.MulTable())
		},
	}

	addFieldFlags(cmd)

	return cmd
}

func renderCayleyTable(cmd *cobra.Command, f *gf.Field, op string, table [][]gf.Element) error {
	elts := f.Elements()
	names := make([]string, len(elts))
	for i, e := range elts {
		names[i] = e.String()
	}

	rows := make([][]string, len(table))
	for i, row := range table {
		cells := make([]string, len(row))
		for j, e := range row {
			cells[j] = e.String()
		}
		rows[i] = cells
	}

	if jsonOutput(cmd) {
		return printJSON(cayleyTableResult{
			Field:     f.Order(),
			Operation: op,
			Elements:  names,
			Table:     rows,
		})
	}

	fmt.Printf("%s %s table over the nonzero elements:\n", f, op)

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(append([]string{op}, names...))
	w.SetAutoFormatHeaders(false)
	for i, cells := range rows {
		w.Append(append([]string{names[i]}, cells...))
	}
	w.Render()

	return nil
}
