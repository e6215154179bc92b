// Package command provides CLI command definitions for HashSnap.
package command

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/cli/output"
	"github.com/yndnr/hashsnap-go/internal/telemetry/metric"
)

// StatsCommand returns the stats command.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show gauges for the latest snapshot and the data directory",
		Action: statsAction,
	}
}

func statsAction(c *cli.Context) error {
	mgr, err := openManager(c)
	if err != nil {
		return err
	}

	table, _, err := mgr.Load(LoadedSpec(c).Allocator())
	if err != nil {
		return err
	}

	registry, err := metric.NewRegistry(metric.NewCollector(table, mgr))
	if err != nil {
		return err
	}
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	gauges := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if g := m.GetGauge(); g != nil {
				gauges[mf.GetName()] = g.GetValue()
			}
		}
	}

	if output.Format(c.String("output")) != output.FormatTable {
		return formatter(c).Format(os.Stdout, gauges)
	}

	names := make([]string, 0, len(gauges))
	for name := range gauges {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := &output.Table{Headers: []string{"METRIC", "VALUE"}}
	for _, name := range names {
		tbl.AddRow(name, fmt.Sprintf("%.0f", gauges[name]))
	}
	return tbl.Render(os.Stdout)
}
