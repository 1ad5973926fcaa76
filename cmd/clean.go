package cmd

import (
	"fmt"
	"log"

	"shaderbin/internal/progbin"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Remove the cached program binary so the next run recompiles",
	Run:   cleanCache,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func cleanCache(cmd *cobra.Command, args []string) {
	path, err := cachePathFromArgs(args)
	if err != nil {
		log.Fatal("Failed to resolve cache path:", err)
	}

	// Invalidate only touches the filesystem, no GL context needed.
	if err := progbin.New(progbin.GLDriver{}, path).Invalidate(); err != nil {
		log.Fatal("Failed to remove cache file:", err)
	}
	fmt.Println("Removed cached binary:", path)
}
