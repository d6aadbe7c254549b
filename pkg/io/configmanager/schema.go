package configmanager

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/invopop/jsonschema"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// Schema returns the JSON schema of kubeassist.yaml, indented for printing.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    schemaTypeMapper,
	}

	schema := reflector.Reflect(&v1alpha1.Config{})
	schema.ID = ""
	schema.Title = "kubeassist configuration"
	schema.Description = "JSON schema for the kubeassist client configuration (kubeassist.yaml)"

	walkSchema(schema, func(s *jsonschema.Schema) {
		s.Required = nil
	})

	if schema.Properties != nil {
		if p, ok := schema.Properties.Get("kind"); ok && p != nil {
			p.Enum = []any{v1alpha1.Kind}
		}

		if p, ok := schema.Properties.Get("apiVersion"); ok && p != nil {
			p.Enum = []any{v1alpha1.APIVersion}
		}
	}

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return out, nil
}

// Render returns the configuration as YAML.
func Render(cfg *v1alpha1.Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return out, nil
}

func walkSchema(schema *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if schema == nil {
		return
	}

	fn(schema)

	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			walkSchema(pair.Value, fn)
		}
	}
}

func schemaTypeMapper(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeFor[metav1.Duration]():
		return &jsonschema.Schema{
			Type:    "string",
			Pattern: "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$",
		}
	case reflect.TypeFor[v1alpha1.MetricKind]():
		var kind v1alpha1.MetricKind

		return enumSchema(kind.ValidValues())
	case reflect.TypeFor[v1alpha1.LogLevel]():
		var level v1alpha1.LogLevel

		return enumSchema(level.ValidValues())
	default:
		return nil
	}
}

func enumSchema(values []string) *jsonschema.Schema {
	enum := make([]any, 0, len(values))
	for _, v := range values {
		enum = append(enum, v)
	}

	return &jsonschema.Schema{Type: "string", Enum: enum}
}
