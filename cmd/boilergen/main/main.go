package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/HumanBot000/BoilerGen/cmd/boilergen"
	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/ui/styles"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := boilergen.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.IsErrorCode(err, errors.ErrAborted), ctx.Err() != nil:
		fmt.Fprintln(os.Stderr, styles.Render("Warning", "\n"+boilergen.MsgCancelled))
		return 0
	default:
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		return 1
	}
}
