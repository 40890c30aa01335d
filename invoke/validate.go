package invoke

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/ming86/lmtools/tool"
)

// validateArgs checks args against the tool's declared input schema. A nil
// or empty schema accepts any query.
func validateArgs(schema map[string]any, args tool.Query) error {
	if len(schema) == 0 {
		return nil
	}

	raw, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var s jsonschema.Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}
	resolved, err := s.Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema: %w", err)
	}

	if args == nil {
		args = tool.Query{}
	}
	return resolved.Validate(map[string]any(args))
}
