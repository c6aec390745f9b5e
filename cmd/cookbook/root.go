package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cookbook"
)

type rootOptions struct {
	configFile string
	envFile    string
	owner      string
	store      string

	module *cookbook.Module
	config cookbook.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "cookbook",
		Short:         "Browse and serve a recipe collection hosted on GitHub",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initialize()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is ./cookbook.yaml)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")
	flags.StringVar(&opts.owner, "owner", "", "repository owner (overrides COOKBOOK_OWNER)")
	flags.StringVar(&opts.store, "store", "", "repository name (overrides COOKBOOK_STORE)")

	root.AddCommand(newServeCommand(opts), newListCommand(opts), newDiscussCommand(opts))
	return root
}

func (o *rootOptions) initialize() error {
	if path := strings.TrimSpace(o.envFile); path != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg, err := cookbook.LoadConfig(o.configFile)
	if err != nil {
		return err
	}
	if owner := strings.TrimSpace(o.owner); owner != "" {
		cfg.Content.Owner = owner
	}
	if store := strings.TrimSpace(o.store); store != "" {
		cfg.Content.Store = store
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	o.config = cfg
	o.module = module
	return nil
}
