package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradeloop/internal/core"
	"tradeloop/internal/db"
	"tradeloop/internal/observ"
	"tradeloop/internal/ui"
)

// debugLogEnv names the file zap writes to. Unset means no logging;
// the terminal belongs to the UI.
const debugLogEnv = "TRADELOOP_DEBUG"

// NewAppCmd creates the app command, which is also what the bare
// binary runs.
func NewAppCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Open the marketplace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
	return cmd
}

func runApp(cmd *cobra.Command) error {
	logger, err := observ.NewLogger(os.Getenv(debugLogEnv), "info")
	if err != nil {
		return writeCommandError(cmd, fmt.Errorf("open debug log: %w", err))
	}
	defer func() { _ = logger.Sync() }()

	conn, err := db.OpenDatabase()
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer conn.Close()

	darkMode, err := db.GetDarkMode(conn)
	if err != nil {
		return writeCommandError(cmd, err)
	}

	options := ui.Options{
		DB:       conn,
		Logger:   logger,
		Session:  core.NewSession(),
		Accounts: core.NewAccounts(),
		DarkMode: darkMode,
	}

	return ui.Run(options)
}
