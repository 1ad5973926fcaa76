package cmd

import (
	"fmt"
	"log"
	"os"

	"shaderbin/internal/config"
	"shaderbin/internal/progbin"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Print the cached binary's header without touching the GPU",
	Run:   inspectCache,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspectCache(cmd *cobra.Command, args []string) {
	path, err := cachePathFromArgs(args)
	if err != nil {
		log.Fatal("Failed to resolve cache path:", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No cached binary at", path)
			return
		}
		log.Fatal("Failed to open cache file:", err)
	}
	defer f.Close()

	header, err := progbin.ReadHeader(f)
	if err != nil {
		log.Fatal("Failed to parse cache header:", err)
	}

	info, err := f.Stat()
	if err != nil {
		log.Fatal("Failed to stat cache file:", err)
	}
	payloadOnDisk := info.Size() - progbin.HeaderSize

	fmt.Println("Cache file:", path)
	fmt.Printf("  Format tag:      0x%X\n", header.Format)
	fmt.Printf("  Declared length: %d bytes\n", header.Length)
	fmt.Printf("  Payload on disk: %d bytes\n", payloadOnDisk)
	if int64(header.Length) != payloadOnDisk {
		fmt.Println("  Warning: declared length does not match payload size; the file is truncated or has trailing data")
	}
}

// cachePathFromArgs returns the explicit path argument when given,
// otherwise the configured cache location.
func cachePathFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return "", err
	}
	return settings.ResolveCachePath()
}
