// Package command provides CLI command definitions for HashSnap.
package command

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/cli/output"
)

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List snapshots in the data directory",
		Action:  listAction,
	}
}

func listAction(c *cli.Context) error {
	mgr, err := openManager(c)
	if err != nil {
		return err
	}

	infos, err := mgr.List()
	if err != nil {
		return err
	}

	if output.Format(c.String("output")) != output.FormatTable {
		return formatter(c).Format(os.Stdout, infos)
	}

	table := &output.Table{
		Headers: []string{"ID", "SIZE", "CREATED"},
	}
	for _, info := range infos {
		table.AddRow(
			info.ID,
			formatSize(info.Size),
			time.UnixMilli(info.CreatedAt).Format("2006-01-02 15:04:05"),
		)
	}
	if err := table.Render(os.Stdout); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d snapshots\n", len(infos))
	return nil
}
