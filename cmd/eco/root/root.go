package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ecobuddy/internal/ui"
)

const Version = "0.1.0"

var (
	logger     *zap.Logger
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "eco",
	Short:         "EcoBuddy — a virtual pet that grows with your eco habits",
	Long:          "EcoBuddy is a local-first CLI/TUI habit tracker: complete eco-friendly tasks to earn EXP and coins, level up your pet, and watch your environmental impact add up.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.ecobuddy.yaml)")

	rootCmd.AddCommand(
		newTasksCmd(),
		newDoCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newRenameCmd(),
		newGrantCmd(),
		newProfileCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
