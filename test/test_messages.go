package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// Manual smoke test against a running server:
//
//	go run ./test [base-url]
const defaultBaseURL = "http://localhost:3000"

type DigestResponse struct {
	Digest string `json:"digest"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var client = &http.Client{Timeout: 10 * time.Second}

func main() {
	baseURL := defaultBaseURL
	if len(os.Args) > 1 {
		baseURL = strings.TrimSuffix(os.Args[1], "/")
	}

	fmt.Printf("🚀 Starting message smoke test against %s...\n", baseURL)

	// Step 1: Submit a message
	digest, err := submitMessage(baseURL, "hello")
	if err != nil {
		log.Fatalf("Failed to submit message: %v", err)
	}
	fmt.Printf("✅ Message stored under digest %s\n", digest)

	// Step 2: Read it back
	message, err := retrieveMessage(baseURL, digest)
	if err != nil {
		log.Fatalf("Failed to retrieve message: %v", err)
	}
	if message != "hello" {
		log.Fatalf("Retrieved %q, want %q", message, "hello")
	}
	fmt.Println("✅ Message retrieved by digest")

	// Step 3: Error paths
	expectStatus(baseURL+"/messages/"+strings.Repeat("f", 64), http.MethodGet, "", http.StatusNotFound)
	expectStatus(baseURL+"/messages", http.MethodPost, `{}`, http.StatusBadRequest)
	expectStatus(baseURL+"/nonexistent", http.MethodGet, "", http.StatusNotFound)

	fmt.Println("✅ Message smoke test completed successfully!")
}

func submitMessage(baseURL, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %v", err)
	}

	resp, err := client.Post(baseURL+"/messages", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("submit failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out DigestResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("malformed response %s: %v", string(body), err)
	}
	return out.Digest, nil
}

func retrieveMessage(baseURL, digest string) (string, error) {
	resp, err := client.Get(baseURL + "/messages/" + digest)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("retrieve failed with status %d: %s", resp.StatusCode, string(body))
	}

	var out MessageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("malformed response %s: %v", string(body), err)
	}
	return out.Message, nil
}

func expectStatus(url, method, body string, want int) {
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		log.Fatalf("Failed to create request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != want {
		log.Fatalf("%s %s: status %d, want %d (%s)", method, url, resp.StatusCode, want, string(respBody))
	}

	var errResp ErrorResponse
	if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
		fmt.Printf("📄 %s %s -> %d %q\n", method, url, resp.StatusCode, errResp.Error)
	} else {
		fmt.Printf("📄 %s %s -> %d %s\n", method, url, resp.StatusCode, string(respBody))
	}
}
