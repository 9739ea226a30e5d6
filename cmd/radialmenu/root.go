package main

import (
	"os"

	"radialmenu/cmd/radialmenu/cli"
	"radialmenu/internal/config"
	"radialmenu/internal/log"

	"github.com/spf13/cobra"
)

// options holds the persistent flags.
type options struct {
	configPath string
	debug      bool
	logJSON    bool
	logFile    string
}

func (o *options) path() string {
	if o.configPath != "" {
		return o.configPath
	}
	return config.DefaultPath()
}

func (o *options) setupLogging() {
	lopts := []log.Option{log.WithOutput(os.Stderr)}
	if o.logJSON {
		lopts = append(lopts, log.WithJSON())
	}
	if o.logFile != "" {
		lopts = append(lopts, log.WithFile(o.logFile))
	}
	log.Configure(lopts...)
	log.SetDebug(o.debug)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "radialmenu",
		Short: "A press-and-hold radial menu launcher",
		Long: `Hold the activation combo to open a four-way wheel at the cursor,
move past the inner circle to open a direction's actions, pick one by
hovering or with the mouse wheel, and release to run it.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.setupLogging()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd.Context(), opts.path())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration document (default is "+config.FileName+" beside the executable)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log one JSON object per line")
	flags.StringVar(&opts.logFile, "log-file", "", "also append logs to this file")

	rootCmd.AddCommand(newCaptureCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	cli.SetTheme(config.DefaultTheme)
	return rootCmd
}
