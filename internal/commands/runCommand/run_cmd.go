package runCommand

import (
	"bufio"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/redjax/storbar/internal/config"
	"github.com/redjax/storbar/internal/constants"
	mountservice "github.com/redjax/storbar/internal/services/mountService"
	reportservice "github.com/redjax/storbar/internal/services/reportService"
	signalservice "github.com/redjax/storbar/internal/services/signalService"
)

// NewRunCommand builds the daemon command: emit a report immediately, then
// one per interval until interrupted. Stdout carries only report lines; all
// diagnostics go to stderr.
func NewRunCommand() *cobra.Command {
	var (
		once     bool
		noSignal bool
	)

	cmd := &cobra.Command{
		Use:   "run [tooltip-mode] [language]",
		Short: "Emit status-bar JSON on an interval",
		Long: `Runs the report loop: each cycle reads the mount table, probes usage for
every real filesystem, prints one minified JSON line on stdout, and signals
the host bar to re-render.

The two optional positional arguments mirror the classic bar-module CLI:
tooltip-mode is "normal" (default) or "compact", language is a BCP-47 tag
reserved for future use. Both are also settable via config file or
STORBAR_* environment variables; positionals win.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(cmd.Flags(), configFile(cmd))
			if err != nil {
				return err
			}

			// Positionals take precedence over every other source.
			if len(args) > 0 {
				settings.TooltipMode = args[0]
			}
			if len(args) > 1 {
				settings.Language = args[1]
			}

			mode, err := reportservice.ParseTooltipMode(settings.TooltipMode)
			if err != nil {
				return err
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			prober := mountservice.DefaultProber()
			if settings.ProbeTimeout > 0 {
				prober = mountservice.WithTimeout(prober, settings.ProbeTimeout)
			}

			var notifier *signalservice.Notifier
			if !noSignal {
				notifier = signalservice.New(settings.SignalProcess, settings.SignalOffset)
			}

			logrus.WithFields(logrus.Fields{
				"mode":     mode.String(),
				"interval": settings.Interval,
				"table":    settings.Table,
			}).Debug("starting report loop")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := bufio.NewWriter(os.Stdout)

			cycle := func() {
				runCycle(settings, mode, prober, notifier, out)
			}

			cycle()
			if once {
				return nil
			}

			ticker := time.NewTicker(settings.Interval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					logrus.Debug("interrupted, stopping report loop")
					return nil
				case <-ticker.C:
					cycle()
				}
			}
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Emit a single report and exit")
	cmd.Flags().BoolVar(&noSignal, "no-signal", false, "Do not signal the host bar after reports")
	cmd.Flags().Duration("interval", constants.DefaultInterval, "Delay between report cycles")
	cmd.Flags().String("table", constants.DefaultMountTable, "Mount table path")
	cmd.Flags().Int64("max-table-size", constants.DefaultMaxTableSize, "Maximum bytes of the mount table to read")
	cmd.Flags().Duration("probe-timeout", 0, "Per-mount probe timeout (0 = unbounded)")
	cmd.Flags().String("process", constants.DefaultHostProcess, "Host bar process name to signal")
	cmd.Flags().Int("rt-offset", constants.DefaultSignalOffset, "Real-time signal offset from SIGRTMIN")

	return cmd
}

// runCycle produces and emits one report. Any failure here is cycle-fatal at
// worst: the error is logged, nothing is printed, and the loop lives on with
// the bar showing its previous data.
func runCycle(settings *config.Settings, mode reportservice.TooltipMode, prober mountservice.Prober, notifier *signalservice.Notifier, out *bufio.Writer) {
	raw, err := mountservice.ReadTable(settings.Table, settings.MaxTableSize)
	if err != nil {
		logrus.WithError(err).Error("mount table unreadable, skipping cycle")
		return
	}

	records := mountservice.ParseTable(raw)
	mounts := mountservice.Collect(records, prober)

	report, err := reportservice.Compose(mounts, mode)
	if err != nil {
		logrus.WithError(err).Error("no report this cycle")
		return
	}

	if err := report.Encode(out); err != nil {
		logrus.WithError(err).Error("writing report failed")
		return
	}
	if err := out.Flush(); err != nil {
		logrus.WithError(err).Error("flushing report failed")
		return
	}

	if notifier != nil {
		if err := notifier.Notify(); err != nil {
			logrus.WithError(err).Warn("signaling host bar failed")
		}
	}
}

// configFile resolves the root command's persistent --config flag.
func configFile(cmd *cobra.Command) string {
	if f := cmd.Flag("config"); f != nil {
		return f.Value.String()
	}
	return ""
}
