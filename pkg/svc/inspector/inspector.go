// Package inspector fetches read-only Kubernetes resource listings from the backend
// and renders them for display.
package inspector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/yaml"
)

// Kind names a resource listing.
type Kind string

// Supported kinds, in menu order.
const (
	Pods        Kind = "Pods"
	Deployments Kind = "Deployments"
	Services    Kind = "Services"
	ConfigMaps  Kind = "ConfigMaps"
	Namespaces  Kind = "Namespaces"
	Nodes       Kind = "Nodes"
)

// ErrUnknownKind is returned for a kind without a fetcher.
var ErrUnknownKind = errors.New("unknown resource kind")

// Kinds returns every supported kind in menu order.
func Kinds() []Kind {
	return []Kind{Pods, Deployments, Services, ConfigMaps, Namespaces, Nodes}
}

var aliases = map[string]Kind{ //nolint:gochecknoglobals // static lookup table
	"pods": Pods, "pod": Pods, "po": Pods,
	"deployments": Deployments, "deployment": Deployments, "deploy": Deployments,
	"services": Services, "service": Services, "svc": Services,
	"configmaps": ConfigMaps, "configmap": ConfigMaps, "cm": ConfigMaps,
	"namespaces": Namespaces, "namespace": Namespaces, "ns": Namespaces,
	"nodes": Nodes, "node": Nodes, "no": Nodes,
}

// ParseKind resolves a command-line argument such as "pods" or "cm" to a Kind.
func ParseKind(name string) (Kind, error) {
	kind, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	return kind, nil
}

// FetchFunc lists the resources of one kind.
type FetchFunc func(ctx context.Context) (backend.Resources, error)

// Lister lists every supported kind. The backend client satisfies it.
type Lister interface {
	Pods(ctx context.Context) (backend.Resources, error)
	Deployments(ctx context.Context) (backend.Resources, error)
	Services(ctx context.Context) (backend.Resources, error)
	ConfigMaps(ctx context.Context) (backend.Resources, error)
	Namespaces(ctx context.Context) (backend.Resources, error)
	Nodes(ctx context.Context) (backend.Resources, error)
}

// Inspector maps kinds to their fetchers.
type Inspector struct {
	fetchers map[Kind]FetchFunc
}

// New creates an Inspector from explicit fetchers.
func New(fetchers map[Kind]FetchFunc) *Inspector {
	return &Inspector{fetchers: fetchers}
}

// NewFromLister creates an Inspector with a fetcher for every supported kind.
func NewFromLister(lister Lister) *Inspector {
	return New(map[Kind]FetchFunc{
		Pods:        lister.Pods,
		Deployments: lister.Deployments,
		Services:    lister.Services,
		ConfigMaps:  lister.ConfigMaps,
		Namespaces:  lister.Namespaces,
		Nodes:       lister.Nodes,
	})
}

// Payload is the listing of one kind.
type Payload struct {
	Kind  Kind
	Items []json.RawMessage
}

// Inspect fetches the listing for the exact kind name. Unknown names fail without a request.
func (i *Inspector) Inspect(ctx context.Context, name string) (Payload, error) {
	kind := Kind(name)

	fetch, ok := i.fetchers[kind]
	if !ok {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	items, err := fetch(ctx)
	if err != nil {
		return Payload{}, fmt.Errorf("fetch %s: %w", kind, err)
	}

	return Payload{Kind: kind, Items: items}, nil
}

// InspectAll fetches several kinds concurrently and returns the payloads in request order.
func (i *Inspector) InspectAll(ctx context.Context, kinds ...Kind) ([]Payload, error) {
	payloads := make([]Payload, len(kinds))

	group, groupCtx := errgroup.WithContext(ctx)

	for idx, kind := range kinds {
		group.Go(func() error {
			payload, err := i.Inspect(groupCtx, string(kind))
			if err != nil {
				return err
			}

			payloads[idx] = payload

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("inspect resources: %w", err)
	}

	return payloads, nil
}

// Pretty returns the items as a JSON array indented with two spaces.
func (p Payload) Pretty() (string, error) {
	raw, err := p.marshal()
	if err != nil {
		return "", err
	}

	var out bytes.Buffer

	err = json.Indent(&out, raw, "", "  ")
	if err != nil {
		return "", fmt.Errorf("indent %s: %w", p.Kind, err)
	}

	return out.String(), nil
}

// YAML returns the items as a YAML sequence.
func (p Payload) YAML() (string, error) {
	raw, err := p.marshal()
	if err != nil {
		return "", err
	}

	out, err := yaml.JSONToYAML(raw)
	if err != nil {
		return "", fmt.Errorf("convert %s to yaml: %w", p.Kind, err)
	}

	return string(out), nil
}

func (p Payload) marshal() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []json.RawMessage{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", p.Kind, err)
	}

	return raw, nil
}
