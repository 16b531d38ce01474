package main

import (
	"fmt"
	"os"

	"github.com/metalagman/todo/internal/config"
	"github.com/metalagman/todo/internal/logging"
	"github.com/metalagman/todo/internal/render"
	"github.com/metalagman/todo/internal/task"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg   config.Config
	store *task.Store
	plain bool
}

func (a *app) setup() error {
	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(workDir)
	if err != nil {
		return err
	}
	logging.Init(cfg.Log.Debug)

	a.cfg = cfg
	a.store = task.NewStore(cfg.Store.Path, cfg.StoreOptions()...)
	log.Debug().Str("path", a.store.Path()).Str("format", a.store.Format().String()).Msg("using task document")
	return nil
}

func (a *app) renderOptions() render.Options {
	if a.plain {
		return render.Plain
	}
	return render.Options{Color: true, Markdown: true}
}

func newRootCmd() (*cobra.Command, error) {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo keeps a list of named tasks in a local file",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	cmd.SetVersionTemplate("todo version {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file path (default "+defaultConfigPath+")")
	flags.String("store", "", "task document path (default "+task.DefaultPath+")")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolVar(&a.plain, "plain", false, "disable colors and markdown rendering")

	for key, name := range map[string]string{
		"config":     "config",
		"store.path": "store",
		"log.debug":  "debug",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind %s flag: %w", name, err)
		}
	}

	cmd.AddCommand(addCmd(a))
	cmd.AddCommand(editCmd(a))
	cmd.AddCommand(tickCmd(a))
	cmd.AddCommand(removeCmd(a))
	cmd.AddCommand(listCmd(a))
	cmd.AddCommand(showCmd(a))
	cmd.AddCommand(browseCmd(a))
	cmd.AddCommand(versionCmd())
	return cmd, nil
}

// Execute runs the root command.
func Execute() error {
	cmd, err := newRootCmd()
	if err != nil {
		return err
	}
	return cmd.Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Printing the version must work without a readable config.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "todo version %s\n", Version)
			return err
		},
	}
}
