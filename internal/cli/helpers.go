package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmshea/coding/internal/validation"
	"github.com/jmshea/coding/pkg/config"
	"github.com/jmshea/coding/pkg/gf"
)

// addFieldFlags registers the flags shared by every command that operates
// within one field.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("field", "f", "16", "Field order (4, 8, 16, 32, 64, 128, or 256)")
	cmd.Flags().StringP("poly", "p", "", "Explicit primitive polynomial as exponents, e.g. 0,1,4 for x^4+x+1")
}

// resolveField builds the field selected by --poly, or by --field when no
// explicit polynomial is given. When neither flag is set, defaults from
// the config file apply.
func resolveField(cmd *cobra.Command) (*gf.Field, error) {
	var defaults config.DefaultSettings
	if !cmd.Flags().Changed("field") && !cmd.Flags().Changed("poly") {
		if manager, err := config.NewManager(); err == nil {
			defaults = manager.Get().Defaults
		}
	}

	polySpec, _ := cmd.Flags().GetString("poly")
	if polySpec == "" {
		polySpec = defaults.Polynomial
	}
	if polySpec != "" {
		exps, err := validation.ParsePolynomial(polySpec)
		if err != nil {
			return nil, err
		}
		f, err := gf.NewFieldFromPoly(exps)
		if err != nil {
			return nil, fmt.Errorf("failed to build field: %w", err)
		}
		return f, nil
	}

	order := defaults.FieldOrder
	if order == 0 {
		orderSpec, _ := cmd.Flags().GetString("field")
		var err error
		order, err = validation.ParseFieldOrder(orderSpec)
		if err != nil {
			return nil, err
		}
	}
	f, err := gf.NewField(order)
	if err != nil {
		return nil, fmt.Errorf("failed to build field: %w", err)
	}
	return f, nil
}

// uiConfig returns the UI settings from the config file, falling back to
// the defaults when no config is readable.
func uiConfig() config.UIConfig {
	if manager, err := config.NewManager(); err == nil {
		return manager.Get().UI
	}
	return config.Default().UI
}

// positionsDefault returns the configured default for printing minimal
// polynomials in positions form.
func positionsDefault() bool {
	if manager, err := config.NewManager(); err == nil {
		return manager.Get().Defaults.Positions
	}
	return false
}

// displayElement renders an element for human-readable output, suffixing
// the field order when the config asks for it.
func displayElement(e gf.Element, ui config.UIConfig) string {
	if ui.ShowFieldOrder {
		return e.InField()
	}
	return e.String()
}

func jsonOutput(cmd *cobra.Command) bool {
	outputJSON, _ := cmd.Flags().GetBool("json")
	return outputJSON
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// terminalWidth returns the width of the attached terminal, or 0 when
// stdout is not a terminal.
func terminalWidth() int {
	if !term.IsTerminal(int(syscall.Stdout)) {
		return 0
	}
	width, _, err := term.GetSize(int(syscall.Stdout))
	if err != nil {
		return 0
	}
	return width
}

// polyString renders a coefficient vector (most significant first) in the
// usual notation, e.g. [1 0 1 1] becomes "x^3 + x + 1".
func polyString(coeffs []int) string {
	deg := len(coeffs) - 1
	var terms []string
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		switch power := deg - i; power {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(power))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// vecString renders a coefficient vector as a compact bit string.
func vecString(bits []int) string {
	var b strings.Builder
	for _, bit := range bits {
		b.WriteByte(byte('0' + bit))
	}
	return b.String()
}
