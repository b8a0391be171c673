package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "shotnamer",
		Short:         "Rename screenshots by their content with a sequential index",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(renameCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		stop()
		os.Exit(1)
	}
}
