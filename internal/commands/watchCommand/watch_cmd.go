package watchCommand

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/redjax/storbar/internal/commands/watchCommand/ui"
	"github.com/redjax/storbar/internal/config"
	"github.com/redjax/storbar/internal/constants"
	reportservice "github.com/redjax/storbar/internal/services/reportService"
)

// NewWatchCommand builds a live terminal preview of the bar module: the JSON
// summary up top, per-mount gauges, and a mount table, refreshed on the
// configured interval.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live preview of the bar module in the terminal",
		Long:  `Shows what the bar will render without needing a bar: the report summary, per-mount usage gauges, and a table of mounted filesystems, refreshed on the report interval. Press q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags(), configFile(cmd))
			if err != nil {
				return err
			}
			mode, err := reportservice.ParseTooltipMode(settings.TooltipMode)
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			p := tea.NewProgram(ui.NewModel(settings.Interval, mode), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running watch UI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Duration("interval", constants.DefaultInterval, "Delay between refreshes")
	cmd.Flags().String("mode", constants.DefaultTooltipMode, "Tooltip mode to preview (normal or compact)")

	return cmd
}

func configFile(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return ""
}
