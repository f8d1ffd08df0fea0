package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change settings",
	Long: `View and change settings stored in config.toml.

Keys:
  google.client_id       OAuth client ID
  google.client_secret   OAuth client secret
  oauth.port             loopback port for sign-in (0 = any free port)
  export.dir             default output directory for export
  export.html            also render HTML on export (true/false)
  ratelimit.docs_rps     Docs API requests per second`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	cmd.Printf("# %s\n", a.config.Path())
	for _, key := range domain.ConfigKeys {
		value, ok := a.config.Get(key)
		if !ok {
			cmd.Printf("%s = (not set)\n", key)
			continue
		}
		cmd.Printf("%s = %s\n", key, displayValue(key, value))
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := checkConfigKey(key); err != nil {
		return err
	}

	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	value, ok := a.config.Get(key)
	if !ok {
		return fmt.Errorf("%s is not set", key)
	}
	cmd.Println(displayValue(key, value))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := checkConfigKey(key); err != nil {
		return err
	}

	value, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if err := a.config.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	cmd.Printf("%s = %s\n", key, displayValue(key, value))
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]
	if err := checkConfigKey(key); err != nil {
		return err
	}

	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if err := a.config.Delete(key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	cmd.Printf("Removed %s\n", key)
	return nil
}

func checkConfigKey(key string) error {
	if !slices.Contains(domain.ConfigKeys, key) {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}
	return nil
}

// parseConfigValue converts raw to the type stored for key.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case domain.ConfigOAuthPort:
		port, err := strconv.Atoi(raw)
		if err != nil || port < 0 || port > 65535 {
			return nil, fmt.Errorf("%w: %s must be a port number", domain.ErrInvalidInput, key)
		}
		return port, nil
	case domain.ConfigExportHTML:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return b, nil
	case domain.ConfigDocsRPS:
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil || rps <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number", domain.ErrInvalidInput, key)
		}
		return rps, nil
	default:
		return raw, nil
	}
}

func displayValue(key string, value any) string {
	s := fmt.Sprint(value)
	if key == domain.ConfigGoogleClientSecret {
		return maskSecret(s)
	}
	return s
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
