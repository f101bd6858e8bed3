// Package deploy wraps the Pulumi Automation API behind a small stack
// operations interface, so CLI handlers can be tested without a Pulumi
// engine. State, diffing, and locking all belong to the engine and its
// backend; nothing here retries or compensates on failure.
package deploy

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// Options identify the stack and its provider configuration.
type Options struct {
	// StackName is the fully qualified or short stack name.
	StackName string
	// ProjectName is the Pulumi project the stack belongs to.
	ProjectName string
	// GCPProject is set as the gcp:project config value, as a secret.
	// Empty means the ambient provider configuration is used.
	GCPProject string
	// Region is set as the gcp:region config value. Empty means unset.
	Region string
	// ProgressOutput receives engine progress; defaults to os.Stdout.
	ProgressOutput io.Writer
}

// ChangeSummary maps engine operation names (create, update, delete, same)
// to resource counts, as reported by a preview.
type ChangeSummary map[string]int

// Stack is the set of operations the CLI drives against one deployment
// stack.
type Stack interface {
	// Preview computes the changes an Up would apply, without applying them.
	Preview(ctx context.Context) (ChangeSummary, error)

	// Up applies the program and returns the stack outputs.
	Up(ctx context.Context) (auto.OutputMap, error)

	// Destroy deletes all stack resources.
	Destroy(ctx context.Context) error

	// Outputs reads the current stack outputs without deploying.
	Outputs(ctx context.Context) (auto.OutputMap, error)
}

// Select creates or selects the named stack with the given inline program
// and applies the provider configuration from opts.
func Select(ctx context.Context, opts Options, program pulumi.RunFunc) (Stack, error) {
	stack, err := auto.UpsertStackInlineSource(ctx, opts.StackName, opts.ProjectName, program)
	if err != nil {
		return nil, fmt.Errorf("failed to select stack %s: %w", opts.StackName, err)
	}

	if opts.GCPProject != "" {
		if err := stack.SetConfig(ctx, "gcp:project", auto.ConfigValue{Value: opts.GCPProject, Secret: true}); err != nil {
			return nil, fmt.Errorf("failed to set gcp:project: %w", err)
		}
	}
	if opts.Region != "" {
		if err := stack.SetConfig(ctx, "gcp:region", auto.ConfigValue{Value: opts.Region}); err != nil {
			return nil, fmt.Errorf("failed to set gcp:region: %w", err)
		}
	}

	progress := opts.ProgressOutput
	if progress == nil {
		progress = os.Stdout
	}

	return &autoStack{stack: stack, progress: progress}, nil
}

// autoStack is the Automation API backed implementation of Stack.
type autoStack struct {
	stack    auto.Stack
	progress io.Writer
}

func (s *autoStack) Preview(ctx context.Context) (ChangeSummary, error) {
	result, err := s.stack.Preview(ctx, optpreview.ProgressStreams(s.progress))
	if err != nil {
		return nil, err
	}

	summary := ChangeSummary{}
	for op, count := range result.ChangeSummary {
		summary[string(op)] = count
	}
	return summary, nil
}

func (s *autoStack) Up(ctx context.Context) (auto.OutputMap, error) {
	result, err := s.stack.Up(ctx, optup.ProgressStreams(s.progress))
	if err != nil {
		return nil, err
	}
	return result.Outputs, nil
}

func (s *autoStack) Destroy(ctx context.Context) error {
	_, err := s.stack.Destroy(ctx, optdestroy.ProgressStreams(s.progress))
	return err
}

func (s *autoStack) Outputs(ctx context.Context) (auto.OutputMap, error) {
	return s.stack.Outputs(ctx)
}
