package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jja725/ruxio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ruxio",
	Short: "Local file-backed key-value shard CLI",
	Long: `CLI for storing and loading whole values in a local ruxio shard.

Values live at <root-path>/<hash % num-bucket>/<hex key>. Settings are read
from flags, RUXIO_* environment variables and the config file, in that order.`,
	SilenceUsage: true,
}

// cfg is rebuilt on every execution so flag, env and file state never leaks
// between runs.
var cfg *viper.Viper

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = initConfig

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/ruxio/config.yaml)")
	rootCmd.PersistentFlags().String("root-path", "", "shard root directory (default: ~/.local/share/ruxio)")
	rootCmd.PersistentFlags().Uint64("num-bucket", ruxio.DefaultNumBucket, "number of bucket directories")
	rootCmd.PersistentFlags().Int("concurrency", ruxio.DefaultConcurrency, "parallel operations for batch puts")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()

	v.BindPFlag("root_path", flags.Lookup("root-path"))
	v.BindPFlag("num_bucket", flags.Lookup("num-bucket"))
	v.BindPFlag("concurrency", flags.Lookup("concurrency"))
	v.BindPFlag("verbose", flags.Lookup("verbose"))

	v.SetEnvPrefix("RUXIO")
	v.AutomaticEnv()
	v.SetDefault("root_path", defaultRootPath())

	if file := flags.Lookup("config").Value.String(); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg = v
	setupLogger(cmd)
	return nil
}

func setupLogger(cmd *cobra.Command) {
	level := log.InfoLevel
	if cfg.GetBool("verbose") {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		TimeFormat:      time.RFC3339,
		ReportTimestamp: true,
		TimeFunction:    log.NowUTC,
	})

	slog.SetDefault(slog.New(handler))
}

func openShard() (*ruxio.Shard, error) {
	return ruxio.Open(
		ruxio.WithRootPath(cfg.GetString("root_path")),
		ruxio.WithNumBucket(cfg.GetUint64("num_bucket")),
		ruxio.WithConcurrency(cfg.GetInt("concurrency")),
		ruxio.WithLogger(slog.Default()),
	)
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ruxio")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "ruxio")
	}
	return ".ruxio"
}

func defaultRootPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ruxio")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "ruxio")
	}
	return ".ruxio"
}
