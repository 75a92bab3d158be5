package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jja725/ruxio"
	"github.com/spf13/cobra"
)

var getOutput string

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Load a value",
	Long:  "Write the value stored under key to stdout, or to a file with --output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "write the value to this file")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	shard, err := openShard()
	if err != nil {
		return err
	}

	data, err := shard.Get(ruxio.StringKey(key))
	if err != nil {
		if errors.Is(err, ruxio.ErrNotFound) {
			return fmt.Errorf("key %q not found", key)
		}
		return fmt.Errorf("get failed: %w", err)
	}

	if getOutput != "" {
		if err := os.WriteFile(getOutput, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", getOutput, err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
