package di

import (
	"fmt"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/devantler-tech/kubeassist/pkg/utils/logging"
	"github.com/samber/do/v2"
)

// ResolveConfig retrieves the effective configuration.
func ResolveConfig(injector Injector) (*v1alpha1.Config, error) {
	cfg, err := do.Invoke[*v1alpha1.Config](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve config dependency: %w", err)
	}

	return cfg, nil
}

// ResolveLogger retrieves the logger.
func ResolveLogger(injector Injector) (*logging.Logger, error) {
	logger, err := do.Invoke[*logging.Logger](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve logger dependency: %w", err)
	}

	return logger, nil
}

// ResolveBackendClient retrieves the backend client.
func ResolveBackendClient(injector Injector) (*backend.Client, error) {
	client, err := do.Invoke[*backend.Client](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve backend client dependency: %w", err)
	}

	return client, nil
}

// ResolveInspector retrieves the resource inspector.
func ResolveInspector(injector Injector) (*inspector.Inspector, error) {
	ins, err := do.Invoke[*inspector.Inspector](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve inspector dependency: %w", err)
	}

	return ins, nil
}

// ResolveMetricsFetcher retrieves the metrics fetcher.
func ResolveMetricsFetcher(injector Injector) (metrics.Fetcher, error) {
	fetcher, err := do.Invoke[metrics.Fetcher](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve metrics fetcher dependency: %w", err)
	}

	return fetcher, nil
}

// ResolveAsker retrieves the chat backend.
func ResolveAsker(injector Injector) (conversation.Asker, error) {
	asker, err := do.Invoke[conversation.Asker](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve asker dependency: %w", err)
	}

	return asker, nil
}
