package disksCommand

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
	reportservice "github.com/redjax/storbar/internal/services/reportService"
	"github.com/redjax/storbar/internal/utils/spinner"
	utils "github.com/redjax/storbar/internal/utils/convert"
)

// NewDisksCommand builds a human-readable view of the same data the bar
// gets: every real mount with size, usage, and severity class.
func NewDisksCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "disks",
		Short: "Show mounted filesystems in a table",
		Long:  `Lists mounted filesystems with their size, usage, and severity class. Pseudo filesystems are hidden unless --all is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := spinner.StartSpinner("Probing mounted filesystems...")
			mounts, err := mountservice.ListMounts(all)
			stop()
			if err != nil {
				return fmt.Errorf("listing mounts: %w", err)
			}

			renderDiskTable(mounts)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include pseudo filesystems and zero-size mounts")

	return cmd
}

func renderDiskTable(mounts []mountservice.Mount) {
	caser := cases.Title(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Device", "Mount", "Type", "Size", "Used", "Free", "Use%", "Class"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Size", Align: text.AlignRight},
		{Name: "Used", Align: text.AlignRight},
		{Name: "Free", Align: text.AlignRight},
		{Name: "Use%", Align: text.AlignRight},
	})

	for _, m := range mounts {
		class := reportservice.Classify(m.Usage.UsedPercent)
		t.AppendRow(table.Row{
			m.Device,
			m.MountPoint,
			m.FSType,
			fmt.Sprintf("%.2f GiB", utils.BytesToGiB(m.Usage.Total)),
			fmt.Sprintf("%.2f GiB", utils.BytesToGiB(m.Usage.Used)),
			fmt.Sprintf("%.2f GiB", utils.BytesToGiB(m.Usage.Free)),
			fmt.Sprintf("%.1f%%", m.Usage.UsedPercent),
			caser.String(string(class)),
		})
	}

	t.Render()
}
