package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/sinphase/internal/config"
)

var (
	// Global flags
	configPath string
	trustFlag  string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "sinphase",
	Short: "sinphase - zero-trust compiler pipeline engine",
	Long: `sinphase drives source units through the seven compiler stages
(tokenization, parsing, semantic, validation, bytecode, verification,
emission) under signature-gated registration and strict ordering, and
prints the audit trail that certifies the chain.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if trustFlag != "" {
			cfg.TrustLevel = trustFlag
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		zcfg := zap.NewProductionConfig()
		level, _ := zap.ParseAtomicLevel(cfg.Log.Level)
		zcfg.Level = level
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().StringVar(&trustFlag, "trust", "", "trust level: disabled, basic, comprehensive, paranoid")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(runCmd, signCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
