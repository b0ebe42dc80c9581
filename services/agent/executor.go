// File: services/agent/executor.go
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goodfoods/llm"
	"goodfoods/models"
	"goodfoods/services/session"
	"goodfoods/services/tools"
	"goodfoods/utils"
)

// StartSession opens a session with the standing greeting already in
// the transcript.
func (s *DefaultAgentService) StartSession(ctx context.Context) (*models.Session, error) {
	sess := session.NewSession()
	sess.AppendTurn(models.Turn{Role: models.RoleAssistant, Content: Greeting})
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// HandleMessage runs one full turn: plan, instruct, execute, and
// persist the updated transcript.
func (s *DefaultAgentService) HandleMessage(ctx context.Context, sessionID, message string) (*models.AgentReply, error) {
	logger := utils.GetLogger()

	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.AppendTurn(models.Turn{Role: models.RoleUser, Content: message})
	sess.Turns = sanitizeHistory(sess.Turns)

	plan := s.generatePlan(ctx, sess.Turns)
	logger.Debug("Planner output",
		zap.String("intent", plan.Intent),
		zap.Any("slots", plan.Slots),
		zap.Strings("recommendedTools", plan.RecommendedTools),
		zap.Strings("missingSlots", plan.MissingSlots),
	)

	applyPlan(sess, plan)
	instruction := buildStepInstruction(sess)

	reply, usedTools := s.executeTurn(ctx, sess, instruction)
	sess.AppendTurn(models.Turn{Role: models.RoleAssistant, Content: reply})

	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &models.AgentReply{
		Reply:     reply,
		Intent:    sess.Intent,
		UsedTools: usedTools,
	}, nil
}

func (s *DefaultAgentService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.Sessions.Get(ctx, sessionID)
}

func (s *DefaultAgentService) EndSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// executeTurn asks the executor for the next utterance and, when it
// requests a tool, runs the tool and folds the round into the
// transcript. Returns the user-facing reply and the tools used.
func (s *DefaultAgentService) executeTurn(ctx context.Context, sess *models.Session, instruction string) (string, []string) {
	logger := utils.GetLogger()

	req := llm.CompletionRequest{
		SystemPrompt: SystemPrompt(s.now()) + "\n\n" + instruction,
		Messages:     toLLMMessages(sess.Turns),
		Temperature:  llmTemperature,
		MaxTokens:    executorMaxTokens,
		Tools:        toolDefs(s.Registry),
	}

	resp, err := s.Provider.Complete(ctx, req)
	if err != nil {
		logger.Error("Executor call failed", zap.Error(err))
		return fmt.Sprintf("API Error: %v", err), nil
	}

	out := outcomeFrom(resp)
	if out.Tool == nil {
		return out.Reply, nil
	}

	inv := out.Tool
	logger.Info("Executing tool", zap.String("tool", inv.Name), zap.Any("args", inv.Args))

	output := tools.ExecuteTool(ctx, s.Registry, inv.Name, inv.Args)
	s.logToolResult(inv.Name, output)

	argsJSON, _ := json.Marshal(inv.Args)
	sess.AppendTurn(models.Turn{
		Role:     models.RoleAssistant,
		Content:  resp.Text,
		ToolName: inv.Name,
		ToolArgs: string(argsJSON),
	})
	sess.AppendTurn(models.Turn{
		Role:     models.RoleTool,
		Content:  output,
		ToolName: inv.Name,
	})

	return formatFinalAnswer(inv.Name, output), []string{inv.Name}
}

func (s *DefaultAgentService) logToolResult(toolName, output string) {
	logger := utils.GetLogger()

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		logger.Warn("Tool output was not valid JSON", zap.String("tool", toolName))
		return
	}
	if toolName == "search_restaurants" {
		total, _ := parsed["total"].(float64)
		logger.Info("Search completed", zap.String("tool", toolName), zap.Int("total", int(total)))
		return
	}
	logger.Info("Tool completed", zap.String("tool", toolName), zap.Int("outputBytes", len(output)))
}

// toLLMMessages converts transcript turns to provider messages,
// rebuilding the assistant tool_calls / tool result linkage with
// fresh sequential ids.
func toLLMMessages(turns []models.Turn) []llm.Message {
	msgs := make([]llm.Message, 0, len(turns))
	callSeq := 0
	currentCallID := ""

	for _, t := range turns {
		switch {
		case t.Role == models.RoleAssistant && t.ToolName != "":
			callSeq++
			currentCallID = fmt.Sprintf("call_%d", callSeq)
			var args map[string]interface{}
			if t.ToolArgs != "" {
				_ = json.Unmarshal([]byte(t.ToolArgs), &args)
			}
			if args == nil {
				args = map[string]interface{}{}
			}
			msgs = append(msgs, llm.Message{
				Role:    models.RoleAssistant,
				Content: t.Content,
				ToolCalls: []llm.ToolCall{{
					ID:        currentCallID,
					Name:      t.ToolName,
					Arguments: args,
				}},
			})
		case t.Role == models.RoleTool:
			msgs = append(msgs, llm.Message{
				Role:       models.RoleTool,
				Content:    t.Content,
				ToolCallID: currentCallID,
			})
		default:
			msgs = append(msgs, llm.Message{Role: t.Role, Content: t.Content})
		}
	}
	return msgs
}

// toolDefs exposes the registry to the provider's tools channel.
func toolDefs(reg *tools.Registry) []llm.Tool {
	all := reg.All()
	defs := make([]llm.Tool, 0, len(all))
	for _, t := range all {
		defs = append(defs, llm.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}
