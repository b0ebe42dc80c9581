// File: services/tools/execute.go
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ExecuteTool runs a registered tool and returns its payload as a JSON
// string for the conversation transcript. Unknown tools, schema
// violations and execution failures are encoded as {"error": ...} so
// the turn can still proceed.
func ExecuteTool(ctx context.Context, reg *Registry, name string, args map[string]interface{}) string {
	tool, ok := reg.Get(name)
	if !ok {
		return errorJSON(fmt.Sprintf("Unknown tool: %s", name))
	}
	if err := validateArgs(tool.Parameters(), args); err != nil {
		return errorJSON(err.Error())
	}
	payload, err := tool.Execute(ctx, args)
	if err != nil {
		return errorJSON(err.Error())
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return errorJSON(err.Error())
	}
	return string(data)
}

// validateArgs checks an invocation against the tool's declared schema:
// every required argument present and non-blank, and values loosely
// type-compatible. Model output may encode numbers as strings, so
// numeric strings pass the number checks.
func validateArgs(params ToolParameters, args map[string]interface{}) error {
	for _, key := range params.Required {
		v, ok := args[key]
		if !ok || v == nil {
			return fmt.Errorf("missing required argument: %s", key)
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return fmt.Errorf("missing required argument: %s", key)
		}
	}
	for key, prop := range params.Properties {
		v, ok := args[key]
		if !ok || v == nil {
			continue
		}
		if !typeCompatible(prop.Type, v) {
			return fmt.Errorf("argument %s must be of type %s", key, prop.Type)
		}
	}
	return nil
}

func typeCompatible(declared string, v interface{}) bool {
	switch declared {
	case "string":
		_, ok := v.(string)
		return ok
	case "integer", "number":
		switch n := v.(type) {
		case float64, int:
			return true
		case string:
			_, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			return err == nil
		}
		return false
	case "boolean":
		_, ok := v.(bool)
		return ok
	}
	return true
}

func errorJSON(msg string) string {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return string(data)
}
