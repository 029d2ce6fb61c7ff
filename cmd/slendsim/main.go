// slendsim runs governance and oracle lifecycle scenarios against an
// in-memory store. It is a development tool for exercising the module
// state machines, not a node daemon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SLENDSIM"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "slendsim",
		Short: "Run slend governance and oracle scenarios in memory",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if cfg := v.GetString("config"); cfg != "" {
				v.SetConfigFile(cfg)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().String("config", "", "optional config file with scenario tunables")

	rootCmd.AddCommand(newGovernanceCmd(v))
	rootCmd.AddCommand(newOracleCmd(v))
	return rootCmd
}
