package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jja725/ruxio"
	"github.com/spf13/cobra"
)

var putCmd = &cobra.Command{
	Use:   "put <key> <file> [<key> <file>...]",
	Short: "Store values",
	Long:  "Store the contents of each file under its key. Use - to read a value from stdin.",
	Args:  pairArgs,
	RunE:  runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func pairArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("requires <key> <file> pairs, received %d arg(s)", len(args))
	}
	return nil
}

func runPut(cmd *cobra.Command, args []string) error {
	shard, err := openShard()
	if err != nil {
		return err
	}

	entries := make([]ruxio.Entry, 0, len(args)/2)
	stdinUsed := false
	for i := 0; i < len(args); i += 2 {
		key, file := args[i], args[i+1]
		if file == "-" {
			if stdinUsed {
				return fmt.Errorf("stdin can only be read once")
			}
			stdinUsed = true
		}

		data, err := readValue(cmd, file)
		if err != nil {
			return err
		}
		entries = append(entries, ruxio.Entry{Key: ruxio.StringKey(key), Value: data})
	}

	if len(entries) == 1 {
		err = shard.Put(entries[0].Key, entries[0].Value)
	} else {
		err = shard.PutMany(context.Background(), entries)
	}
	if err != nil {
		return fmt.Errorf("put failed: %w", err)
	}

	slog.Info("Stored values", "count", len(entries), "root", shard.Config().RootPath)
	return nil
}

func readValue(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	return data, nil
}
