package deploy

import (
	"context"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
)

// MockStack is a mock implementation of Stack for handler tests.
type MockStack struct {
	PreviewFunc func(ctx context.Context) (ChangeSummary, error)
	UpFunc      func(ctx context.Context) (auto.OutputMap, error)
	DestroyFunc func(ctx context.Context) error
	OutputsFunc func(ctx context.Context) (auto.OutputMap, error)

	// Calls records operation names in invocation order.
	Calls []string
}

func (m *MockStack) Preview(ctx context.Context) (ChangeSummary, error) {
	m.Calls = append(m.Calls, "preview")
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx)
	}
	return ChangeSummary{}, nil
}

func (m *MockStack) Up(ctx context.Context) (auto.OutputMap, error) {
	m.Calls = append(m.Calls, "up")
	if m.UpFunc != nil {
		return m.UpFunc(ctx)
	}
	return auto.OutputMap{}, nil
}

func (m *MockStack) Destroy(ctx context.Context) error {
	m.Calls = append(m.Calls, "destroy")
	if m.DestroyFunc != nil {
		return m.DestroyFunc(ctx)
	}
	return nil
}

func (m *MockStack) Outputs(ctx context.Context) (auto.OutputMap, error) {
	m.Calls = append(m.Calls, "outputs")
	if m.OutputsFunc != nil {
		return m.OutputsFunc(ctx)
	}
	return auto.OutputMap{}, nil
}
