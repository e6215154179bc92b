// Package command provides CLI command definitions for HashSnap.
package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/cli/output"
)

// DumpCommand returns the dump command.
func DumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print the records of a snapshot",
		ArgsUsage: "SNAPSHOT",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "max",
				Aliases: []string{"m"},
				Usage:   "Maximum records to print (0 = all)",
			},
		},
		Action: dumpAction,
	}
}

type dumpRecord struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func dumpAction(c *cli.Context) error {
	path, err := resolveSnapshotArg(c)
	if err != nil {
		return err
	}

	table, _, err := loadSnapshotFile(path)
	if err != nil {
		return err
	}

	max := c.Int("max")
	var records []dumpRecord
	it := table.Iterator()
	for it.MoveNext() {
		records = append(records, dumpRecord{
			Key:   string(it.Key()),
			Value: string(it.Value()),
		})
		if max > 0 && len(records) >= max {
			break
		}
	}

	if output.Format(c.String("output")) != output.FormatTable {
		return formatter(c).Format(os.Stdout, records)
	}

	tbl := &output.Table{Headers: []string{"KEY", "VALUE"}}
	for _, r := range records {
		tbl.AddRow(strconv.Quote(r.Key), strconv.Quote(r.Value))
	}
	if err := tbl.Render(os.Stdout); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d records (table holds %d)\n", len(records), table.Count())
	return nil
}
