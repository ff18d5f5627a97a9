package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	_ "github.com/cryptobot/cryptobot/adapters/drivers/exchange/bybit"
	"github.com/cryptobot/cryptobot/internal/logging"
)

const defaultLogDir = "./data/logs"

func newRootCmd() *cobra.Command {
	var logFile *logging.LogFile

	cmd := &cobra.Command{
		Use:     "cryptobot",
		Short:   "CryptoBot CLI",
		Long:    "CryptoBot downloads historical market data from exchange APIs.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("CRYPTOBOT_DB_URL")
	if defaultDB == "" {
		defaultDB = "file:cryptobot.yml"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env CRYPTOBOT_DB_URL) (file:/path/to/cryptobot.yml | sqlite:/path/to.db)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env CRYPTOBOT_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-output", "-", `Log output ("-" stderr, "none", path, or "" for an auto-named file)`)
	cmd.PersistentFlags().String("log-dir", defaultLogDir, "Directory for log files")
	cmd.PersistentFlags().Int("log-retention", 7, "Days to retain auto-named log files")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("CRYPTOBOT_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		output, _ := c.Flags().GetString("log-output")
		dir, _ := c.Flags().GetString("log-dir")
		retention, _ := c.Flags().GetInt("log-retention")

		var l logging.Logger
		if output == "-" {
			var err error
			l, err = logging.New(format, slog.LevelInfo)
			if err != nil {
				return err
			}
		} else {
			lf, err := logging.NewLogFile(&logging.LogConfig{
				Output:        output,
				Dir:           dir,
				RetentionDays: retention,
			})
			if err != nil {
				return err
			}
			logFile = lf
			if err := logging.CleanupOldLogFiles(dir, retention); err != nil {
				return err
			}
			l, err = logging.NewWithWriter(format, slog.LevelInfo, lf.Writer())
			if err != nil {
				lf.Close()
				return err
			}
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.PersistentPostRunE = func(c *cobra.Command, _ []string) error {
		if logFile != nil {
			return logFile.Close()
		}
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdDownload())
	cmd.AddCommand(newCmdExport())
	cmd.AddCommand(newCmdAdmin())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
