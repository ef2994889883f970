package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alex65536/breakdown/internal/util/slogx"
	"github.com/alex65536/breakdown/internal/util/style"
	"github.com/alex65536/breakdown/internal/version"
)

const defaultOptionsPath = "breakdown.toml"

var rootCmd = &cobra.Command{
	Use:     "breakdown",
	Version: version.Version,
	Short:   "Renders contributors breakdown pages for a viewer",
	Long: `Breakdown takes a contributors breakdown page and renders it the way the viewer
sees it: heat-map cells are colored, and UTC timestamps are shown in the
viewer's timezone.
`,
	SilenceUsage: true,
}

var (
	aOptions string
	aVerbose bool
)

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if aVerbose {
		level = slog.LevelDebug
	}
	return slogx.TextLogger(style.Stderr(), level)
}

func options() (Options, error) {
	path := aOptions
	explicit := rootCmd.PersistentFlags().Changed("options")
	if !explicit {
		path = defaultOptionsPath
	}
	return loadOptions(path, explicit)
}

func main() {
	p := rootCmd.PersistentFlags()
	p.StringVarP(&aOptions, "options", "o", defaultOptionsPath, "options file")
	p.BoolVarP(&aVerbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(localizeCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
