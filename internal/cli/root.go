package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/existflow/shootcal/internal/config"
	"github.com/existflow/shootcal/internal/logger"
)

var (
	logLevel   string
	logFile    string
	logConsole bool
	dbPath     string

	// appConfig is loaded once per invocation by the root pre-run hook
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "shootcal",
	Short: "Shootcal - shoot scheduling calendar",
	Long: `Shootcal keeps a freelance creative's shoot calendar: which days are
blocked for which project, when payments are due, and whether canceled
shoots still happened.

Run 'shootcal' without arguments to open the month view.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			logger.Warn("Failed to load config, using defaults", logger.F("error", err))
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}
		if cmd.Flags().Changed("db") {
			cfg.DBPath = dbPath
			configChanged = true
		}

		if configChanged {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}
		appConfig = cfg

		logConfig := logger.Config{
			Level:      logger.ParseLevel(cfg.LogLevel),
			FilePath:   cfg.LogFile,
			MaxSize:    10 * 1024 * 1024, // 10MB
			MaxAge:     7,
			MaxBackups: 5,
			Console:    cfg.LogConsole,
		}

		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("Shootcal started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: runWatch,

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("Shootcal exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the calendar database")

	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(reblockCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(blockedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(watchCmd)
}
