// File: cmd/goodfoods-cli/commands/chat.go
package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"goodfoods/config"
	"goodfoods/database"
	catalogRepo "goodfoods/database/repository/catalog"
	ledgerRepo "goodfoods/database/repository/ledger"
	"goodfoods/llm"
	"goodfoods/llm/gemini"
	"goodfoods/llm/openrouter"
	"goodfoods/services/agent"
	"goodfoods/services/session"
	"goodfoods/services/tools"

	"github.com/spf13/cobra"
)

var ChatCmd = &cobra.Command{
	Use:     "chat",
	Aliases: []string{"c"},
	Short:   "Chat with the reservation assistant",
	Long: `Starts an interactive terminal conversation with the GoodFoods assistant.
The assistant searches the local catalog and books tables against the local
ledger, so no HTTP server is needed.`,
	Run: runChatShell,
}

func runChatShell(cmd *cobra.Command, args []string) {
	config.LoadConfig()
	database.InitDataFiles()

	catalog := catalogRepo.NewFileCatalogRepo()
	ledger := ledgerRepo.NewFileLedgerRepo()

	registry := tools.NewRegistry()
	registry.Register(tools.NewSearchRestaurantsTool(catalog))
	registry.Register(tools.NewCheckAvailabilityTool(catalog, ledger))
	registry.Register(tools.NewBookTableTool(catalog, ledger))

	ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	agentSvc := agent.NewDefaultAgentService(newProvider(), registry, session.NewMemoryStore(ttl))
	agentSvc.HistoryTurns = config.AppConfig.MaxHistoryTurns

	ctx := context.Background()
	sess, err := agentSvc.StartSession(ctx)
	if err != nil {
		fmt.Printf("Error creating session: %v\n", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nEnding session...")
		os.Exit(0)
	}()

	fmt.Println("╔═══════════════════════════════════════════╗")
	fmt.Println("║  GoodFoods Reservation Assistant          ║")
	fmt.Println("╚═══════════════════════════════════════════╝")
	fmt.Printf("Session ID: %s\n\n", sess.ID)
	fmt.Println(agent.Greeting)
	fmt.Println("\nType 'quit' or press Ctrl+C to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou > ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Ending session...")
			break
		}

		fmt.Println(sendWithSpinner(ctx, agentSvc, sess.ID, input))
	}
}

// sendWithSpinner forwards one message to the assistant while printing a
// progress indicator, since planner and executor calls can take a while.
func sendWithSpinner(ctx context.Context, svc agent.AgentService, sessionID, input string) string {
	fmt.Print("💭 Thinking")
	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Print(".")
			}
		}
	}()

	msgCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	reply, err := svc.HandleMessage(msgCtx, sessionID, input)
	cancel()
	close(done)
	fmt.Println()

	if err != nil {
		return fmt.Sprintf("❌ Error: %v", err)
	}
	return reply.Reply
}

// newProvider selects the configured LLM backend.
func newProvider() llm.Provider {
	cfg := llm.Config{Model: config.AppConfig.LLMModel}
	switch config.AppConfig.LLMProvider {
	case "gemini":
		cfg.APIKey = config.AppConfig.GeminiAPIKey
		return gemini.NewProvider(cfg)
	default:
		cfg.APIKey = config.AppConfig.OpenRouterAPIKey
		cfg.BaseURL = config.AppConfig.OpenRouterBaseURL
		return openrouter.NewProvider(cfg)
	}
}
