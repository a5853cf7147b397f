package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/studyblog"
)

// env is what every subcommand needs once configuration is resolved.
type env struct {
	cfg    studyblog.SiteConfig
	logger *logrus.Logger
	store  *studyblog.Store
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath  string
		seedPath string
		e        env
	)

	cmd := &cobra.Command{
		Use:           "studyblog",
		Short:         "studyblog - a study notes blog built with Go, Echo, and templ",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			boot := studyblog.NewLogger("info", "text")
			cfg, err := studyblog.LoadConfig(viper.New(), cfgPath, boot)
			if err != nil {
				return err
			}
			store, err := loadStore(seedPath)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = studyblog.NewLogger(cfg.LogLevel, cfg.LogFormat)
			e.store = store
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().StringVar(&seedPath, "seed", "", "path to a posts YAML file (defaults to the bundled sample posts)")

	cmd.AddCommand(newServeCmd(&e))
	cmd.AddCommand(newPostsCmd(&e))
	cmd.AddCommand(newShowCmd(&e))
	cmd.AddCommand(newTagsCmd(&e))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func loadStore(path string) (*studyblog.Store, error) {
	if path == "" {
		return studyblog.DefaultStore()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return studyblog.LoadSeed(f)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the studyblog version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "studyblog %s\n", version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "List configuration keys and their defaults",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, o := range studyblog.ConfigOptions() {
				fmt.Fprintf(out, "%-18s %-24v %s\n", o.Key, o.Default, o.Comment)
			}
			fmt.Fprintln(out, "\nEvery key can be set with a STUDYBLOG_ prefixed environment variable, e.g. STUDYBLOG_ADDR.")
		},
	}
}
