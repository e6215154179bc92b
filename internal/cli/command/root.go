// Package command provides CLI command definitions for HashSnap.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/cli/output"
	"github.com/yndnr/hashsnap-go/internal/config"
	"github.com/yndnr/hashsnap-go/internal/infra/buildinfo"
	"github.com/yndnr/hashsnap-go/internal/infra/confloader"
	"github.com/yndnr/hashsnap-go/internal/storage/snapshot"
	"github.com/yndnr/hashsnap-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "hashsnap-cli",
		Usage:   "HashSnap snapshot management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ListCommand(),
			InspectCommand(),
			DumpCommand(),
			SeedCommand(),
			StatsCommand(),
			PruneCommand(),
		},
		Before: resolveSpec,
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the YAML configuration file",
			EnvVars: []string{"HASHSNAP_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "Snapshot directory (overrides storage.data_dir)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose logging",
		},
	}
}

// resolveSpec loads the configuration once and stashes it in the app
// metadata for command actions.
func resolveSpec(c *cli.Context) error {
	spec := config.Default()

	loader := confloader.NewLoader(confloader.WithConfigFile(c.String("config")))
	if err := loader.Load(&spec); err != nil {
		return err
	}

	if dir := c.String("data-dir"); dir != "" {
		spec.Storage.DataDir = dir
	}
	if c.Bool("verbose") {
		spec.Log.Level = "debug"
	}

	if err := spec.Verify(); err != nil {
		return err
	}

	logger.SetLevel(spec.Log.Level)
	c.App.Metadata["spec"] = spec
	return nil
}

// LoadedSpec retrieves the resolved configuration from context.
func LoadedSpec(c *cli.Context) config.Spec {
	if s, ok := c.App.Metadata["spec"].(config.Spec); ok {
		return s
	}
	return config.Default()
}

// openManager creates a snapshot manager for the resolved data dir.
func openManager(c *cli.Context) (*snapshot.Manager, error) {
	return snapshot.NewManager(LoadedSpec(c).SnapshotConfig())
}

// formatter returns the formatter selected by the --output flag.
func formatter(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}

// formatSize renders a byte count for display.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
