package cmd

import (
	"fmt"

	"github.com/jja725/ruxio"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <key>",
	Short: "Print where a key is stored",
	Long:  "Print the data file path key resolves to. Nothing is read or created.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	shard, err := openShard()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), shard.DataPath(ruxio.StringKey(args[0])))
	return err
}
