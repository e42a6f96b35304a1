package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var autoRefresh bool

	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cc"},
		Short:   "Show or change the configuration",
		Long: `Without flags, display the effective configuration after merging the
defaults, the config file and TODOIQ_* environment variables.

With --auto-refresh, update [refresh] auto in the config file. When enabled,
every command first brings the agenda up to date.

Examples:
  todoiq config
  todoiq config --auto-refresh
  todoiq config --auto-refresh=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("auto-refresh") {
				out, err := c.SetConfigUseCase().Execute(cmd.Context(), usecase.SetConfigInput{
					AutoRefresh: &autoRefresh,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set refresh.auto = %t in %s\n", autoRefresh, out.Path)
				return nil
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if _, statErr := os.Stat(out.Path); statErr == nil {
				_, _ = fmt.Fprintf(w, "- %s\n", out.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}

	cmd.Flags().BoolVar(&autoRefresh, "auto-refresh", false, "Refresh the agenda before every command")

	return cmd
}

// formatEffectiveConfig writes cfg in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
