package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tradeloop/internal/db"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Get or set configuration",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.OpenDatabase()
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer conn.Close()

			if len(args) == 0 {
				entries, err := db.GetAllConfig(conn)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No configuration set")
					return nil
				}
				fmt.Fprintln(out, "Configuration:")
				for _, entry := range entries {
					fmt.Fprintf(out, "  %s: %s\n", entry.Key, entry.Value)
				}
				return nil
			}

			key := normalizeConfigKey(args[0])
			if len(args) == 1 {
				value, err := db.GetConfig(conn, key)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if value == "" {
					return writeCommandError(cmd, fmt.Errorf("config key '%s' not found", args[0]))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], value)
				return nil
			}

			if err := db.SetConfig(conn, key, args[1]); err != nil {
				return writeCommandError(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
			return nil
		},
	}

	return cmd
}

func normalizeConfigKey(value string) string {
	return strings.ReplaceAll(value, "-", "_")
}
