package handlers

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// Preview computes the changes an update would apply to the named stack
// without applying them, and logs the per-operation resource counts.
func Preview(ctx context.Context, stackName string) error {
	stack, err := selectStack(ctx, stackName)
	if err != nil {
		return err
	}

	log.Printf("Previewing stack %s...", stackName)

	summary, err := stack.Preview(ctx)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	if len(summary) == 0 {
		log.Printf("No changes.")
		return nil
	}

	ops := make([]string, 0, len(summary))
	for op := range summary {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		log.Printf("  %s: %d", op, summary[op])
	}
	return nil
}
