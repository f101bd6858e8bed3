package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
)

// Up applies the VPC program to the named stack and prints the resulting
// stack outputs.
//
// Failures propagate unchanged from the engine; partial state is left for
// the engine's own reconciliation on the next run.
func Up(ctx context.Context, stackName string) error {
	stack, err := selectStack(ctx, stackName)
	if err != nil {
		return err
	}

	log.Printf("Updating stack %s...", stackName)

	outputs, err := stack.Up(ctx)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	log.Printf("Update complete.")
	return printOutputs(os.Stdout, outputs, isatty.IsTerminal(os.Stdout.Fd()))
}

// printOutputs renders stack outputs as JSON. Secret values are masked,
// matching how the engine's own CLI displays them.
func printOutputs(w io.Writer, outputs auto.OutputMap, pretty bool) error {
	rendered := make(map[string]interface{}, len(outputs))
	for name, output := range outputs {
		if output.Secret {
			rendered[name] = "[secret]"
			continue
		}
		rendered[name] = output.Value
	}

	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(rendered)
}
