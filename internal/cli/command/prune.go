// Package command provides CLI command definitions for HashSnap.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/storage/snapshot"
)

// PruneCommand returns the prune command.
func PruneCommand() *cli.Command {
	return &cli.Command{
		Name:  "prune",
		Usage: "Apply the retention policy to the data directory",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "keep",
				Usage: "Number of snapshots to keep (overrides config)",
			},
			&cli.IntFlag{
				Name:  "keep-days",
				Usage: "Keep snapshots younger than this many days (overrides config)",
			},
		},
		Action: pruneAction,
	}
}

func pruneAction(c *cli.Context) error {
	cfg := LoadedSpec(c).SnapshotConfig()
	if keep := c.Int("keep"); keep > 0 {
		cfg.RetentionCount = keep
	}
	if days := c.Int("keep-days"); days > 0 {
		cfg.RetentionDays = days
	}

	mgr, err := snapshot.NewManager(cfg)
	if err != nil {
		return err
	}

	before, err := mgr.List()
	if err != nil {
		return err
	}
	if err := mgr.Prune(); err != nil {
		return err
	}
	after, err := mgr.List()
	if err != nil {
		return err
	}

	fmt.Printf("Pruned %d snapshots, %d remaining.\n", len(before)-len(after), len(after))
	return nil
}
