package cmd

import (
	"log"
	"log/slog"
	"os"

	"shaderbin/internal/progbin"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shaderbin",
	Short: "OpenGL program binary cache demo",
	Long: `shaderbin renders a triangle with a shader program whose linked
binary is cached on disk. The first run compiles the shaders from
source and saves the driver's binary; later runs reload the binary and
skip compilation entirely.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	progbin.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
}
