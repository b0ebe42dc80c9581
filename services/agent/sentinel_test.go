// File: services/agent/sentinel_test.go
package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goodfoods/llm"
)

// TestDetectToolCall_ParsesToolAndArgs verifies the sentinel form
// parses into a tool invocation.
func TestDetectToolCall_ParsesToolAndArgs(t *testing.T) {
	inv := DetectToolCall("TOOL: search_restaurants\nARGS: {\"city\": \"Bangalore\", \"party_size\": 4}")

	require.NotNil(t, inv)
	assert.Equal(t, "search_restaurants", inv.Name)
	assert.Equal(t, "Bangalore", inv.Args["city"])
	assert.Equal(t, float64(4), inv.Args["party_size"])
}

// TestDetectToolCall_IgnoresSurroundingProse verifies preamble before
// the sentinel does not break parsing.
func TestDetectToolCall_IgnoresSurroundingProse(t *testing.T) {
	inv := DetectToolCall("Sure, searching now.\nTOOL: search_restaurants\nARGS: {}")

	require.NotNil(t, inv)
	assert.Equal(t, "search_restaurants", inv.Name)
	assert.Empty(t, inv.Args)
}

// TestDetectToolCall_RejectsMalformedArgs verifies broken JSON args
// turn the text into a plain reply.
func TestDetectToolCall_RejectsMalformedArgs(t *testing.T) {
	assert.Nil(t, DetectToolCall("TOOL: search_restaurants\nARGS: {city: Bangalore}"))
}

// TestDetectToolCall_RequiresBothMarkers verifies half a sentinel is
// not a tool call.
func TestDetectToolCall_RequiresBothMarkers(t *testing.T) {
	assert.Nil(t, DetectToolCall("TOOL: search_restaurants"))
	assert.Nil(t, DetectToolCall("ARGS: {\"city\": \"Bangalore\"}"))
	assert.Nil(t, DetectToolCall("Let me look that up for you."))
	assert.Nil(t, DetectToolCall("TOOL:\nARGS: {}"))
}

// TestOutcomeFrom_PrefersStructuredToolCalls verifies provider-native
// calls win over any sentinel text.
func TestOutcomeFrom_PrefersStructuredToolCalls(t *testing.T) {
	out := outcomeFrom(&llm.CompletionResponse{
		Text: "TOOL: book_table\nARGS: {}",
		ToolCalls: []llm.ToolCall{{
			ID:   "call_1",
			Name: "search_restaurants",
		}},
	})

	require.NotNil(t, out.Tool)
	assert.Equal(t, "search_restaurants", out.Tool.Name)
	assert.NotNil(t, out.Tool.Args)
}

// TestOutcomeFrom_FallsBackToSentinel verifies the text form is used
// when the tools channel is empty.
func TestOutcomeFrom_FallsBackToSentinel(t *testing.T) {
	out := outcomeFrom(&llm.CompletionResponse{
		Text: "TOOL: check_availability\nARGS: {\"restaurant_id\": 1}",
	})

	require.NotNil(t, out.Tool)
	assert.Equal(t, "check_availability", out.Tool.Name)
}

// TestOutcomeFrom_PlainReply verifies ordinary text stays a reply.
func TestOutcomeFrom_PlainReply(t *testing.T) {
	out := outcomeFrom(&llm.CompletionResponse{Text: "Which city would you like to dine in?"})

	assert.Nil(t, out.Tool)
	assert.Equal(t, "Which city would you like to dine in?", out.Reply)
}
