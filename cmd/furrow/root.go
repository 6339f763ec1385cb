package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clarktrimble/sabot"
	"github.com/spf13/cobra"
)

// app is shared by the subcommands once the root has loaded config
type app struct {
	configPath string
	storeName  string
	cfg        *Config
}

func execute() int {

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {

	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "furrow",
		Short:         "Browse farm work listings",
		Long:          "Browse, filter and facet farm work listings in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			a.cfg, err = loadConfig(a.configPath)
			if err != nil {
				return
			}
			if cmd.Flags().Changed("store") {
				a.cfg.Store = a.storeName
			}
			return
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&a.storeName, "store", storeMemory, "Store: memory, duck or sqlite")

	rootCmd.AddCommand(
		newBrowseCmd(a),
		newListCmd(a),
		newFacetsCmd(a),
		newSampleCmd(a),
		newInitCmd(),
	)

	return rootCmd
}

// logger returns a logger writing to the configured log file, and its closer
func (a *app) logger() (*sabot.Sabot, func(), error) {

	file, err := openLog(a.cfg)
	if err != nil {
		return nil, nil, err
	}

	closer := func() { closeLog(file) }
	return &sabot.Sabot{Writer: file}, closer, nil
}

// ctx is the context for a command's store calls
func (a *app) ctx(cmd *cobra.Command) context.Context {

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}
