// File: services/agent/executor_test.go
package agent

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogRepo "goodfoods/database/repository/catalog"
	ledgerRepo "goodfoods/database/repository/ledger"
	"goodfoods/llm"
	"goodfoods/models"
	"goodfoods/services/session"
	"goodfoods/services/tools"
)

// stubProvider scripts LLM completions and records every request.
type stubProvider struct {
	CompleteFunc func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error)
	requests     []llm.CompletionRequest
}

func (p *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.requests = append(p.requests, req)
	if p.CompleteFunc != nil {
		return p.CompleteFunc(ctx, req)
	}
	return &llm.CompletionResponse{Text: "ok"}, nil
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Models() []string { return []string{"stub-model"} }

// stubCatalog backs agent tests with a fixed restaurant list.
type stubCatalog struct {
	restaurants []models.Restaurant
}

func (s *stubCatalog) All() []models.Restaurant {
	return s.restaurants
}

func (s *stubCatalog) ByID(id int) (*models.Restaurant, error) {
	for _, r := range s.restaurants {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, catalogRepo.ErrRestaurantNotFound
}

func (s *stubCatalog) ReplaceAll(restaurants []models.Restaurant) error {
	s.restaurants = restaurants
	return nil
}

// newTestAgent wires a full agent over an in-memory session store, a
// two-restaurant catalog and a throwaway ledger file.
func newTestAgent(t *testing.T, provider llm.Provider) *DefaultAgentService {
	t.Helper()

	catalog := &stubCatalog{restaurants: []models.Restaurant{
		{ID: 1, Name: "Toit", City: "Bangalore", Area: "Indiranagar", Cuisine: []string{"Continental", "Italian"}, Rating: 4.6, PriceRange: "₹₹", PricePerPerson: 900, Capacity: 50},
		{ID: 2, Name: "Trishna", City: "Mumbai", Area: "Fort", Cuisine: []string{"Seafood"}, Rating: 4.6, PriceRange: "₹₹₹", PricePerPerson: 2500, Capacity: 40},
	}}
	ledger := ledgerRepo.NewFileLedgerRepoAt(filepath.Join(t.TempDir(), "bookings.json"))

	registry := tools.NewRegistry()
	registry.Register(tools.NewSearchRestaurantsTool(catalog))
	registry.Register(tools.NewCheckAvailabilityTool(catalog, ledger))
	registry.Register(tools.NewBookTableTool(catalog, ledger))

	return NewDefaultAgentService(provider, registry, session.NewMemoryStore(time.Hour))
}

const plannerSearchReady = `{"intent": "search_restaurants", "slots": {"city": "Bangalore", "party_size": 4, "date": "2025-02-14", "time": "19:00"}, "recommended_tools": ["search_restaurants"], "missing_slots": []}`

// TestStartSession_SeedsGreeting verifies a new session opens with the
// standing greeting already in the transcript.
func TestStartSession_SeedsGreeting(t *testing.T) {
	svc := newTestAgent(t, &stubProvider{})

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.ID)
	require.Len(t, sess.Turns, 1)
	assert.Equal(t, models.RoleAssistant, sess.Turns[0].Role)
	assert.Equal(t, Greeting, sess.Turns[0].Content)

	stored, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, stored.ID)
}

// TestHandleMessage_UnknownSession verifies a missing session surfaces
// the store's not-found error.
func TestHandleMessage_UnknownSession(t *testing.T) {
	svc := newTestAgent(t, &stubProvider{})

	_, err := svc.HandleMessage(context.Background(), "no-such-session", "hi")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

// TestHandleMessage_AnswersWithoutTool verifies small talk flows
// straight through: planner classifies, executor replies, no tools run.
func TestHandleMessage_AnswersWithoutTool(t *testing.T) {
	calls := 0
	provider := &stubProvider{CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		calls++
		if calls == 1 {
			return &llm.CompletionResponse{Text: `{"intent": "other", "slots": {}, "recommended_tools": [], "missing_slots": []}`}, nil
		}
		return &llm.CompletionResponse{Text: "Happy to help! Which city are you in?"}, nil
	}}
	svc := newTestAgent(t, provider)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), sess.ID, "hello")
	require.NoError(t, err)

	assert.Equal(t, "Happy to help! Which city are you in?", reply.Reply)
	assert.Equal(t, models.IntentOther, reply.Intent)
	assert.Empty(t, reply.UsedTools)

	stored, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	// Greeting, user turn, assistant turn.
	assert.Len(t, stored.Turns, 3)
}

// TestHandleMessage_RunsSearchTool verifies the full search path: the
// executor's sentinel output triggers the tool and the reply is
// rendered from the tool payload.
func TestHandleMessage_RunsSearchTool(t *testing.T) {
	calls := 0
	provider := &stubProvider{CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		calls++
		if calls == 1 {
			return &llm.CompletionResponse{Text: plannerSearchReady}, nil
		}
		return &llm.CompletionResponse{Text: "TOOL: search_restaurants\nARGS: {\"city\": \"Bangalore\", \"party_size\": 4}"}, nil
	}}
	svc := newTestAgent(t, provider)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), sess.ID, "Dinner in Bangalore for 4, Feb 14 at 7pm")
	require.NoError(t, err)

	assert.Contains(t, reply.Reply, "I found 1 restaurants for you")
	assert.Contains(t, reply.Reply, "**Toit**")
	assert.Equal(t, []string{"search_restaurants"}, reply.UsedTools)

	// The executor request carries the tool definitions and the step
	// directive on top of the base system prompt.
	require.Len(t, provider.requests, 2)
	executorReq := provider.requests[1]
	assert.Len(t, executorReq.Tools, 3)
	assert.Contains(t, executorReq.SystemPrompt, "GoodFoods Reservation AI")
	assert.Contains(t, executorReq.SystemPrompt, "Ready to search restaurants")

	// The tool round is persisted so later turns can resolve ids.
	stored, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	var toolTurns []models.Turn
	for _, turn := range stored.Turns {
		if turn.Role == models.RoleTool {
			toolTurns = append(toolTurns, turn)
		}
	}
	require.Len(t, toolTurns, 1)
	assert.Equal(t, "search_restaurants", toolTurns[0].ToolName)
	assert.Contains(t, toolTurns[0].Content, `"total":1`)
}

// TestHandleMessage_StructuredToolCall verifies provider-native tool
// calls work without the sentinel text form.
func TestHandleMessage_StructuredToolCall(t *testing.T) {
	calls := 0
	provider := &stubProvider{CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		calls++
		if calls == 1 {
			return &llm.CompletionResponse{Text: plannerSearchReady}, nil
		}
		return &llm.CompletionResponse{ToolCalls: []llm.ToolCall{{
			ID:        "call_abc",
			Name:      "search_restaurants",
			Arguments: map[string]interface{}{"city": "Mumbai"},
		}}}, nil
	}}
	svc := newTestAgent(t, provider)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), sess.ID, "restaurants in mumbai for 4, feb 14 7pm")
	require.NoError(t, err)

	assert.Contains(t, reply.Reply, "**Trishna**")
	assert.Equal(t, []string{"search_restaurants"}, reply.UsedTools)
}

// TestHandleMessage_BooksTable verifies a booking-ready turn records
// the reservation and answers with the confirmation message.
func TestHandleMessage_BooksTable(t *testing.T) {
	plannerBookReady := `{"intent": "book_table", "slots": {"restaurant_id": 1, "customer_name": "Priya Sharma", "phone": "9876543210", "date": "2025-02-14", "time": "19:00", "party_size": 4}, "recommended_tools": ["book_table"], "missing_slots": []}`
	executorCall := "TOOL: book_table\nARGS: {\"restaurant_id\": 1, \"customer_name\": \"Priya Sharma\", \"phone\": \"9876543210\", \"date\": \"2025-02-14\", \"time\": \"19:00\", \"party_size\": 4}"

	calls := 0
	provider := &stubProvider{CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		calls++
		if calls == 1 {
			return &llm.CompletionResponse{Text: plannerBookReady}, nil
		}
		return &llm.CompletionResponse{Text: executorCall}, nil
	}}
	svc := newTestAgent(t, provider)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), sess.ID, "Book Toit for Priya Sharma, 9876543210, Feb 14 7pm, 4 people")
	require.NoError(t, err)

	assert.Contains(t, reply.Reply, "BOOKING CONFIRMED")
	assert.Contains(t, reply.Reply, "Priya Sharma")
	assert.Equal(t, models.IntentBook, reply.Intent)
	assert.Equal(t, []string{"book_table"}, reply.UsedTools)

	stored, err := svc.GetSession(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseBookingReady, stored.Phase)
}

// TestHandleMessage_ProviderErrorBecomesReply verifies an executor
// failure degrades to an error reply instead of failing the turn.
func TestHandleMessage_ProviderErrorBecomesReply(t *testing.T) {
	provider := &stubProvider{CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return nil, errors.New("upstream unavailable")
	}}
	svc := newTestAgent(t, provider)

	sess, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	reply, err := svc.HandleMessage(context.Background(), sess.ID, "hello")
	require.NoError(t, err)

	assert.Equal(t, "API Error: upstream unavailable", reply.Reply)
	assert.Empty(t, reply.UsedTools)
}

// TestToLLMMessages_RebuildsToolLinkage verifies persisted tool rounds
// are replayed with fresh, matching call ids.
func TestToLLMMessages_RebuildsToolLinkage(t *testing.T) {
	turns := []models.Turn{
		{Role: models.RoleUser, Content: "find me a table"},
		{Role: models.RoleAssistant, ToolName: "search_restaurants", ToolArgs: `{"city": "Bangalore"}`},
		{Role: models.RoleTool, Content: `{"total": 1, "restaurants": []}`, ToolName: "search_restaurants"},
		{Role: models.RoleAssistant, Content: "I found 1 restaurants for you"},
	}

	msgs := toLLMMessages(turns)
	require.Len(t, msgs, 4)

	require.Len(t, msgs[1].ToolCalls, 1)
	assert.Equal(t, "call_1", msgs[1].ToolCalls[0].ID)
	assert.Equal(t, "search_restaurants", msgs[1].ToolCalls[0].Name)
	assert.Equal(t, "Bangalore", msgs[1].ToolCalls[0].Arguments["city"])

	assert.Equal(t, models.RoleTool, msgs[2].Role)
	assert.Equal(t, "call_1", msgs[2].ToolCallID)

	assert.Empty(t, msgs[3].ToolCalls)
}
