package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskline/internal/interfaces/cli/seed"
	"deskline/internal/interfaces/cli/server"
	"deskline/internal/interfaces/cli/shop"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskline",
		Short: "Deskline - helpdesk and storefront development backend",
		Long:  `Deskline serves the mock REST API the helpdesk and storefront front ends are built against, with seedable fixture storage.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		seed.NewCommand(),
		shop.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
