package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - support ticket service",
		Long:  `Helpdesk is a support ticket service with JWT authentication, category management and AI-assisted replies.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
