package experience

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/autoresume/internal/schemas"
	"github.com/jonathan/autoresume/internal/types"
	schemafiles "github.com/jonathan/autoresume/schemas"
)

// Input formats accepted by ParseResume
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadResume loads a raw resume record from a .json, .yaml or .yml file
func LoadResume(path string) (*types.RawResume, error) {
	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	raw, err := ParseResume(content, format)
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		loadErr.Path = path
	}
	return raw, err
}

func formatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", &LoadError{Path: path, Message: "unsupported file extension (want .json, .yaml or .yml)"}
	}
}

// ParseResume decodes a raw resume record. YAML is converted to JSON first so
// both formats pass through the same schema check and field coercion.
func ParseResume(content []byte, format string) (*types.RawResume, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(content)
		if err != nil {
			return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
		}
		content = converted
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}

	if err := schemas.ValidateDocument(schemafiles.RawResume, content); err != nil {
		return nil, &LoadError{Message: "input does not match raw resume schema", Cause: err}
	}

	var raw types.RawResume
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &raw, nil
}

func yamlToJSON(content []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, err
	}
	doc, err := nodeValue(&root)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}

// nodeValue converts a YAML node to plain Go values. Scalars stay text so that
// "gpa: 3.8" or "date: 2025" reach the resume fields as strings.
func nodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.AliasNode:
		return nodeValue(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := nodeValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return n.Value, nil
	default:
		return nil, fmt.Errorf("unsupported YAML node at line %d", n.Line)
	}
}
