package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Outputs prints the named stack's current outputs as JSON without
// deploying anything.
func Outputs(ctx context.Context, stackName string) error {
	stack, err := selectStack(ctx, stackName)
	if err != nil {
		return err
	}

	outputs, err := stack.Outputs(ctx)
	if err != nil {
		return fmt.Errorf("failed to read outputs: %w", err)
	}

	return printOutputs(os.Stdout, outputs, isatty.IsTerminal(os.Stdout.Fd()))
}
