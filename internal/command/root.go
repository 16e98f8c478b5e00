package command

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const AppName = "tradeloop"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "TradeLoop - barter marketplace in your terminal",
		Long:          "TradeLoop is a peer-to-peer bartering marketplace that runs entirely in your terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		NewAppCmd(),
		NewConfigCmd(),
	)

	return cmd
}

func Execute() error {
	_ = godotenv.Load()
	return NewRootCmd(Version).Execute()
}
