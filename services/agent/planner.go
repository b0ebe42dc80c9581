// File: services/agent/planner.go
package agent

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"goodfoods/llm"
	"goodfoods/models"
	"goodfoods/utils"
)

const (
	plannerMaxTokens  = 500
	executorMaxTokens = 1024
	llmTemperature    = 0.6
)

// sanitizeHistory removes tool-call turns that never received their
// result, and results that lost their call. Providers reject such
// transcripts outright.
func sanitizeHistory(turns []models.Turn) []models.Turn {
	clean := make([]models.Turn, 0, len(turns))
	for i, t := range turns {
		if t.Role == models.RoleAssistant && t.ToolName != "" {
			if i+1 >= len(turns) || turns[i+1].Role != models.RoleTool {
				continue
			}
		}
		if t.Role == models.RoleTool {
			if len(clean) == 0 {
				continue
			}
			prev := clean[len(clean)-1]
			if prev.Role != models.RoleAssistant || prev.ToolName == "" {
				continue
			}
		}
		clean = append(clean, t)
	}
	return clean
}

// rawPlan mirrors the planner's JSON output before slot coercion.
// Models are inconsistent about number formatting, so slots are decoded
// leniently from a raw map.
type rawPlan struct {
	Intent           string                 `json:"intent"`
	Slots            map[string]interface{} `json:"slots"`
	RecommendedTools []string               `json:"recommended_tools"`
	MissingSlots     []string               `json:"missing_slots"`
}

// generatePlan runs the planner stage over a snapshot of recent turns.
// Any failure degrades to the fallback plan; a broken planner must
// never fail the whole turn.
func (s *DefaultAgentService) generatePlan(ctx context.Context, turns []models.Turn) models.Plan {
	logger := utils.GetLogger()

	snapshot := turns
	if max := s.maxHistoryTurns(); len(snapshot) > max {
		snapshot = snapshot[len(snapshot)-max:]
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Planner snapshot marshal failed", zap.Error(err))
		return models.FallbackPlan()
	}

	resp, err := s.Provider.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: PlannerPrompt,
		Messages:     []llm.Message{{Role: models.RoleUser, Content: string(payload)}},
		Temperature:  llmTemperature,
		MaxTokens:    plannerMaxTokens,
	})
	if err != nil {
		logger.Error("Planner call failed", zap.Error(err))
		return models.FallbackPlan()
	}

	raw := stripCodeFences(resp.Text)
	var rp rawPlan
	if err := json.Unmarshal([]byte(raw), &rp); err != nil {
		logger.Warn("Planner output was not valid JSON", zap.Error(err), zap.String("output", resp.Text))
		return models.FallbackPlan()
	}

	plan := models.Plan{
		Intent:           rp.Intent,
		Slots:            coerceSlots(rp.Slots),
		RecommendedTools: rp.RecommendedTools,
		MissingSlots:     rp.MissingSlots,
	}
	if plan.RecommendedTools == nil {
		plan.RecommendedTools = []string{}
	}
	if plan.MissingSlots == nil {
		plan.MissingSlots = []string{}
	}

	// Keep only tools that actually exist.
	valid := plan.RecommendedTools[:0]
	for _, name := range plan.RecommendedTools {
		if _, ok := s.Registry.Get(name); ok {
			valid = append(valid, name)
		}
	}
	plan.RecommendedTools = valid

	return plan
}

// stripCodeFences unwraps ```json ... ``` and bare ``` ... ``` blocks.
func stripCodeFences(text string) string {
	if strings.Contains(text, "```json") {
		after := strings.SplitN(text, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(text, "```") {
		parts := strings.Split(text, "```")
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[1])
		}
	}
	return strings.TrimSpace(text)
}

// coerceSlots converts the planner's loose slot map into a SlotSet,
// tolerating numbers-as-strings and floats for the integer slots.
func coerceSlots(raw map[string]interface{}) models.SlotSet {
	return models.SlotSet{
		City:         slotString(raw, models.SlotCity),
		Cuisine:      slotString(raw, models.SlotCuisine),
		Date:         slotString(raw, models.SlotDate),
		Time:         slotString(raw, models.SlotTime),
		PartySize:    slotInt(raw, models.SlotPartySize),
		RestaurantID: slotInt(raw, models.SlotRestaurantID),
		CustomerName: slotString(raw, models.SlotCustomerName),
		Phone:        slotString(raw, models.SlotPhone),
	}
}

func slotString(raw map[string]interface{}, key string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// Phone numbers in particular show up as JSON numbers.
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return ""
}

func slotInt(raw map[string]interface{}, key string) int {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		trimmed := strings.TrimSpace(n)
		var parsed float64
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			return int(parsed)
		}
	}
	return 0
}
