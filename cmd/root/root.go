package root

import (
	"log/slog"

	"github.com/LakshyaxGupta/FlowBreak/cmd/analyze"
	"github.com/LakshyaxGupta/FlowBreak/cmd/consume"
	"github.com/LakshyaxGupta/FlowBreak/cmd/migrate"
	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/server"
	"github.com/spf13/cobra"
)

func GetRootCmd(config *config.Config, logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "flowbreak",
		Short:         "FlowBreak attention analytics backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.RunServer(config, logger)
		},
	})

	rootCmd.AddCommand(migrate.GetMigrateCmd(config.DB, logger))
	rootCmd.AddCommand(consume.GetConsumeCmd(config, logger))
	rootCmd.AddCommand(analyze.GetAnalyzeCmd(config.PolicyPath))

	return rootCmd
}
