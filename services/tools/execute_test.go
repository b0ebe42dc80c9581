// File: services/tools/execute_test.go
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTool struct{}

func (failingTool) Name() string               { return "failing_tool" }
func (failingTool) Description() string        { return "always fails" }
func (failingTool) Parameters() ToolParameters { return ToolParameters{Type: "object"} }
func (failingTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, errors.New("boom")
}

// TestExecuteTool_UnknownTool verifies unregistered names come back as
// an error payload, not a crash.
func TestExecuteTool_UnknownTool(t *testing.T) {
	reg := NewRegistry()

	out := ExecuteTool(context.Background(), reg, "teleport", nil)
	assert.JSONEq(t, `{"error": "Unknown tool: teleport"}`, out)
}

// TestExecuteTool_EncodesToolFailure verifies execution errors are
// folded into the JSON payload.
func TestExecuteTool_EncodesToolFailure(t *testing.T) {
	reg := NewRegistry()
	reg.Register(failingTool{})

	out := ExecuteTool(context.Background(), reg, "failing_tool", nil)
	assert.JSONEq(t, `{"error": "boom"}`, out)
}

// TestExecuteTool_EnforcesSchema verifies invocations are checked
// against the declared schema before the tool runs.
func TestExecuteTool_EnforcesSchema(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewSearchRestaurantsTool(fixtureCatalog()))

	out := ExecuteTool(context.Background(), reg, "search_restaurants", map[string]interface{}{"cuisine": "Italian"})
	assert.JSONEq(t, `{"error": "missing required argument: city"}`, out)

	out = ExecuteTool(context.Background(), reg, "search_restaurants", map[string]interface{}{"city": "  "})
	assert.JSONEq(t, `{"error": "missing required argument: city"}`, out)

	out = ExecuteTool(context.Background(), reg, "search_restaurants", map[string]interface{}{
		"city":       "Mumbai",
		"party_size": true,
	})
	assert.JSONEq(t, `{"error": "argument party_size must be of type integer"}`, out)

	// Numeric strings from the model are tolerated.
	out = ExecuteTool(context.Background(), reg, "search_restaurants", map[string]interface{}{
		"city":       "Mumbai",
		"party_size": "4",
	})
	assert.NotContains(t, out, "error")
}

// TestExecuteTool_MarshalsPayload verifies a successful run returns the
// tool's payload as JSON.
func TestExecuteTool_MarshalsPayload(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewSearchRestaurantsTool(fixtureCatalog()))

	out := ExecuteTool(context.Background(), reg, "search_restaurants", map[string]interface{}{"city": "Mumbai"})

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Equal(t, float64(1), parsed["total"])
}

// TestRegistry_RegisterAndLookup verifies registration, lookup and
// listing.
func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	catalog := fixtureCatalog()
	ledger := newTestLedger(t)
	reg.Register(NewSearchRestaurantsTool(catalog))
	reg.Register(NewCheckAvailabilityTool(catalog, ledger))
	reg.Register(NewBookTableTool(catalog, ledger))

	tool, ok := reg.Get("book_table")
	require.True(t, ok)
	assert.Equal(t, "book_table", tool.Name())

	_, ok = reg.Get("no_such_tool")
	assert.False(t, ok)

	names := reg.ListTools()
	assert.ElementsMatch(t, []string{"search_restaurants", "check_availability", "book_table"}, names)
	assert.Len(t, reg.All(), 3)
}
