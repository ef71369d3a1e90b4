package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmshea/coding/pkg/config"
)

func NewConfigCommand() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the tool configuration",
		Long: `Show the current configuration, including the default field order and
display settings. With --reset, the config file is rewritten with the
defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := config.NewManager()
			if err != nil {
				return err
			}

			if reset {
				manager.Set(config.Default())
				if err := manager.Save(); err != nil {
					return err
				}
			}

			cfg := manager.Get()
			if jsonOutput(cmd) {
				return printJSON(cfg)
			}

			yellow := color.New(color.FgYellow)
			yellow.Println("Configuration:")
			fmt.Printf("  file: %s\n", manager.Path())
			fmt.Printf("  default field order: %d\n", cfg.Defaults.FieldOrder)
			if cfg.Defaults.Polynomial != "" {
				fmt.Printf("  default polynomial: %s\n", cfg.Defaults.Polynomial)
			}
			fmt.Printf("  minimal polynomials as positions: %t\n", cfg.Defaults.Positions)
			fmt.Printf("  colored output: %t\n", cfg.UI.UseColor)
			fmt.Printf("  show field order suffix: %t\n", cfg.UI.ShowFieldOrder)

			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Rewrite the config file with default settings")

	return cmd
}
