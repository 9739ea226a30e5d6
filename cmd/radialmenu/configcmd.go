package main

import (
	"fmt"
	"os"

	"radialmenu/cmd/radialmenu/cli"
	"radialmenu/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration document",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	cmd.AddCommand(newConfigPathCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.path()
			if _, err := os.Stat(path); err == nil && !force {
				cli.PrintWarning(path + " already exists, use --force to overwrite")
				return nil
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			cli.PrintSuccess("Wrote default configuration to " + path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing document")
	return cmd
}

func newConfigShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with every default filled in",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigFile(opts.path())
			if err != nil {
				cli.PrintWarning(fmt.Sprintf("%v, showing defaults", err))
				cfg = config.New()
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.path())
		},
	}
}
