package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/crucible-ci/crucible/internal/adapters/inbound/cli"
	"github.com/crucible-ci/crucible/internal/domain"
)

// Exit codes:
//
//	0   - success
//	1   - something outside crucible's control failed (a delegated tool's
//	      own status is forwarded unchanged instead)
//	2   - internal error: unknown stage, excess arguments, bad flags
//	130 - interrupt
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Execute(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		os.Exit(domain.ExitInterrupt)
	}
	os.Exit(domain.ExitCodeFor(err))
}
