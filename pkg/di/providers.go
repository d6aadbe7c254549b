package di

import (
	"fmt"
	"io"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/devantler-tech/kubeassist/pkg/utils/logging"
	"github.com/samber/do/v2"
)

// NewRuntime constructs the runtime used by the command tree. Configuration is
// loaded lazily, after flags have been parsed. Logs go to logOutput unless a log
// file is configured.
func NewRuntime(manager *configmanager.Manager, logOutput io.Writer) *Runtime {
	return NewRuntimeFromLoader(manager.Load, logOutput)
}

// NewRuntimeFromLoader constructs the runtime around an arbitrary configuration loader.
func NewRuntimeFromLoader(load func() (*v1alpha1.Config, error), logOutput io.Writer) *Runtime {
	return New(
		ProvideConfig(load),
		provideLogger(logOutput),
		provideBackendClient,
		provideInspector,
		provideMetricsFetcher,
		provideAsker,
	)
}

// ProvideConfig registers the configuration loader.
func ProvideConfig(load func() (*v1alpha1.Config, error)) Provider {
	return func(i Injector) error {
		do.Provide(i, func(Injector) (*v1alpha1.Config, error) {
			cfg, err := load()
			if err != nil {
				return nil, fmt.Errorf("load configuration: %w", err)
			}

			return cfg, nil
		})

		return nil
	}
}

func provideLogger(output io.Writer) Provider {
	return func(i Injector) error {
		do.Provide(i, func(i Injector) (*logging.Logger, error) {
			cfg, err := ResolveConfig(i)
			if err != nil {
				return nil, err
			}

			logger, err := logging.New(string(cfg.Log.Level), cfg.Log.File, output)
			if err != nil {
				return nil, fmt.Errorf("create logger: %w", err)
			}

			return logger, nil
		})

		return nil
	}
}

func provideBackendClient(i Injector) error {
	do.Provide(i, func(i Injector) (*backend.Client, error) {
		cfg, err := ResolveConfig(i)
		if err != nil {
			return nil, err
		}

		logger, err := ResolveLogger(i)
		if err != nil {
			return nil, err
		}

		client, err := backend.New(cfg.Backend.URL,
			backend.WithTimeout(cfg.Backend.Timeout.Duration),
			backend.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("create backend client: %w", err)
		}

		return client, nil
	})

	return nil
}

func provideInspector(i Injector) error {
	do.Provide(i, func(i Injector) (*inspector.Inspector, error) {
		client, err := ResolveBackendClient(i)
		if err != nil {
			return nil, err
		}

		return inspector.NewFromLister(client), nil
	})

	return nil
}

func provideMetricsFetcher(i Injector) error {
	do.Provide(i, func(i Injector) (metrics.Fetcher, error) {
		client, err := ResolveBackendClient(i)
		if err != nil {
			return nil, err
		}

		return metrics.NewBackendFetcher(client), nil
	})

	return nil
}

func provideAsker(i Injector) error {
	do.Provide(i, func(i Injector) (conversation.Asker, error) {
		client, err := ResolveBackendClient(i)
		if err != nil {
			return nil, err
		}

		return client, nil
	})

	return nil
}
