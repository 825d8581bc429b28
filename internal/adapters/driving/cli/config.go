package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change persistent settings stored in the config file.

Known keys:
  db_path        corpus database path
  index_path     search index path
  default_limit  result limit when --limit is not given
  verbose        enable debug logging`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	RunE:  runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not initialised")
	}

	key := args[0]
	value, found := configStore.Get(key)
	if !found {
		return fmt.Errorf("key %q is not set", key)
	}
	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not initialised")
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, coerceConfigValue(raw)); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not initialised")
	}

	keys := []string{file.KeyDBPath, file.KeyIndexPath, file.KeyDefaultLimit, file.KeyVerbose}
	for _, key := range keys {
		if value, found := configStore.Get(key); found {
			cmd.Printf("%-14s %v\n", key, value)
		} else {
			cmd.Printf("%-14s (not set)\n", key)
		}
	}
	return nil
}

// coerceConfigValue keeps numbers and booleans typed in the TOML file.
// Integers are tried first because ParseBool also accepts "1" and "0".
func coerceConfigValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
