package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "provida",
		Short:        "Clínica Pro Vida site server and AI widget tools",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newSearchCmd(), newEditCmd())
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
