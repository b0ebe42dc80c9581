package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"goodfoods/models"
)

const baseURL = "http://localhost:8080" // Change if the service runs elsewhere.

// Scripted conversation walking the search → book flow end to end
// against a running service.
var script = []string{
	"Hi there!",
	"I'm looking for Italian food in Bangalore",
	"We are 4 people, dinner on 2025-03-01 at 19:00",
	"Book a table at Toit. My name is Priya Sharma, phone 9876543210",
}

func main() {
	client := &http.Client{Timeout: 2 * time.Minute}

	// Open a fresh chat session.
	resp, err := client.Post(baseURL+"/api/chat/sessions", "application/json", nil)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	var created models.SessionCreatedResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatalf("Failed to decode session response: %v", err)
	}
	resp.Body.Close()
	fmt.Printf("Session %s\nassistant > %s\n", created.SessionID, created.Greeting)

	// Play the scripted turns.
	for _, message := range script {
		fmt.Printf("\nyou > %s\n", message)

		payload, err := json.Marshal(models.ChatRequest{Message: message})
		if err != nil {
			log.Fatalf("Failed to marshal message: %v", err)
		}
		resp, err := client.Post(
			fmt.Sprintf("%s/api/chat/sessions/%s/messages", baseURL, created.SessionID),
			"application/json", bytes.NewReader(payload),
		)
		if err != nil {
			log.Fatalf("Failed to send message: %v", err)
		}
		var reply models.ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
			log.Fatalf("Failed to decode reply: %v", err)
		}
		resp.Body.Close()

		fmt.Printf("assistant > %s\n", reply.Reply)
		if len(reply.UsedTools) > 0 {
			fmt.Printf("(intent: %s, tools: %v)\n", reply.Intent, reply.UsedTools)
		}
	}

	// Fetch the transcript, then tear the session down.
	resp, err = client.Get(fmt.Sprintf("%s/api/chat/sessions/%s", baseURL, created.SessionID))
	if err != nil {
		log.Fatalf("Failed to fetch transcript: %v", err)
	}
	var view models.SessionView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		log.Fatalf("Failed to decode transcript: %v", err)
	}
	resp.Body.Close()
	fmt.Printf("\nTranscript holds %d turns\n", len(view.Turns))

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/chat/sessions/%s", baseURL, created.SessionID), nil)
	if err != nil {
		log.Fatalf("Failed to build delete request: %v", err)
	}
	resp, err = client.Do(req)
	if err != nil {
		log.Fatalf("Failed to delete session: %v", err)
	}
	resp.Body.Close()
	fmt.Println("Session deleted")
}
