package handlers

import (
	"context"
	"fmt"
	"log"
)

// Destroy deletes all resources of the named stack. The confirmed flag
// must be set; the handler refuses to tear down a network otherwise.
func Destroy(ctx context.Context, stackName string, confirmed bool) error {
	if !confirmed {
		return fmt.Errorf("refusing to destroy stack %s without --yes", stackName)
	}

	stack, err := selectStack(ctx, stackName)
	if err != nil {
		return err
	}

	log.Printf("Destroying stack %s...", stackName)

	if err := stack.Destroy(ctx); err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	log.Printf("Stack %s destroyed.", stackName)
	return nil
}
