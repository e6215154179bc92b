// Package command provides CLI command definitions for HashSnap.
package command

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/hashsnap-go/internal/cli/output"
	"github.com/yndnr/hashsnap-go/internal/hashtable"
	"github.com/yndnr/hashsnap-go/internal/serializer"
	"github.com/yndnr/hashsnap-go/internal/stream"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show settings and record statistics for a snapshot",
		ArgsUsage: "SNAPSHOT",
		Action:    inspectAction,
	}
}

// inspectReport is the machine-readable inspect output.
type inspectReport struct {
	Path         string `json:"path" yaml:"path"`
	Size         int64  `json:"size" yaml:"size"`
	Checksum     string `json:"checksum" yaml:"checksum"`
	NumShards    uint32 `json:"num_shards" yaml:"num_shards"`
	BucketHint   uint32 `json:"bucket_hint" yaml:"bucket_hint"`
	MaxKeySize   uint32 `json:"max_key_size" yaml:"max_key_size"`
	MaxValueSize uint32 `json:"max_value_size" yaml:"max_value_size"`
	Records      int64  `json:"records" yaml:"records"`
	KeyBytes     int64  `json:"key_bytes" yaml:"key_bytes"`
	ValueBytes   int64  `json:"value_bytes" yaml:"value_bytes"`
}

func inspectAction(c *cli.Context) error {
	path, err := resolveSnapshotArg(c)
	if err != nil {
		return err
	}

	table, checksum, err := loadSnapshotFile(path)
	if err != nil {
		return err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	set := table.Settings()
	perf := table.PerfData()
	report := inspectReport{
		Path:         path,
		Size:         stat.Size(),
		Checksum:     checksum,
		NumShards:    set.NumShards,
		BucketHint:   set.BucketHint,
		MaxKeySize:   set.MaxKeySize,
		MaxValueSize: set.MaxValueSize,
		Records:      perf.Get(hashtable.RecordsLoadedFromSerializer),
		KeyBytes:     perf.Get(hashtable.TotalKeySize),
		ValueBytes:   perf.Get(hashtable.TotalValueSize),
	}

	if output.Format(c.String("output")) != output.FormatTable {
		return formatter(c).Format(os.Stdout, report)
	}

	tbl := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	tbl.AddRow("path", report.Path)
	tbl.AddRow("size", formatSize(report.Size))
	tbl.AddRow("checksum", report.Checksum)
	tbl.AddRow("num_shards", fmt.Sprintf("%d", report.NumShards))
	tbl.AddRow("bucket_hint", fmt.Sprintf("%d", report.BucketHint))
	tbl.AddRow("max_key_size", fmt.Sprintf("%d", report.MaxKeySize))
	tbl.AddRow("max_value_size", fmt.Sprintf("%d", report.MaxValueSize))
	tbl.AddRow("records", fmt.Sprintf("%d", report.Records))
	tbl.AddRow("key_bytes", formatSize(report.KeyBytes))
	tbl.AddRow("value_bytes", formatSize(report.ValueBytes))
	return tbl.Render(os.Stdout)
}

// resolveSnapshotArg resolves the first argument to a snapshot path.
// A bare snapshot id is looked up in the data directory.
func resolveSnapshotArg(c *cli.Context) (string, error) {
	arg := c.Args().First()
	if arg == "" {
		return "", fmt.Errorf("snapshot path or id required")
	}

	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	name := arg
	if !strings.HasSuffix(name, ".snap") {
		name += ".snap"
	}
	path := filepath.Join(LoadedSpec(c).Storage.DataDir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("snapshot %q not found", arg)
	}
	return path, nil
}

// loadSnapshotFile deserializes one snapshot file into a fresh table and
// returns its payload checksum in hex.
func loadSnapshotFile(path string) (*hashtable.Table, string, error) {
	fr, err := stream.NewFileReader(path)
	if err != nil {
		return nil, "", err
	}
	defer fr.Close()

	table, err := serializer.NewDeserializer(nil).Deserialize(hashtable.NewHeapAllocator(), fr)
	if err != nil {
		return nil, "", err
	}
	return table, hex.EncodeToString(fr.Checksum()), nil
}
