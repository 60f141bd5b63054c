package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multiselect/internal/config"
	"multiselect/internal/eventbus"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

var configForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPathOrDefault()
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		bus := eventbus.New()
		defer bus.Close()

		if err := config.NewConfigServiceWithBus(path, bus).Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPathOrDefault())
	},
}

func configPathOrDefault() string {
	if flags.configPath != "" {
		return flags.configPath
	}
	return config.DefaultPath()
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing file")
	configCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "config file")
	configCmd.AddCommand(configInitCmd, configPathCmd)
}
