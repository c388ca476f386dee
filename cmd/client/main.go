package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiResponse is the JSON envelope every /api endpoint answers with.
type apiResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// This client exercises every endpoint of a running service as a smoke test:
// health check, fresh newsletter sign-up, duplicate sign-up, invalid sign-up
// and a contact submission.
//
// Usage example on the command line:
// > go run main.go -base=http://localhost:5000
func main() {
	basePtr := flag.String("base", "http://localhost:5000", "base URL of the running service")
	flag.Parse()
	base := *basePtr

	// Unique email per run so the fresh sign-up is actually fresh.
	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())

	checkHealth(base)

	newsletter := fmt.Sprintf(`{"name": "Smoke Test", "email": %q, "interest": "courses"}`, email)
	call(base, "/api/newsletter", newsletter, http.StatusCreated, "Subscribed")
	call(base, "/api/newsletter", newsletter, http.StatusOK, "Already subscribed")
	call(base, "/api/newsletter", `{"email": "not-an-email"}`, http.StatusBadRequest, "")

	contact := fmt.Sprintf(`{
		"name": "Smoke Test",
		"email": %q,
		"topic": "Smoke",
		"message": "Automated smoke test submission."
	}`, email)
	call(base, "/api/contact", contact, http.StatusCreated, "Message received")
	call(base, "/api/contact", `{"email": "x@y.z", "message": "no name"}`, http.StatusBadRequest, "")

	fmt.Println("all checks passed")
}

// checkHealth performs the health call and panics if the service is not up.
func checkHealth(base string) {
	res, err := http.Get(base + "/health")
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("health check failed with status %d", res.StatusCode))
	}
	fmt.Println("GET /health:", res.Status)
}

// call posts the JSON body to the given path and verifies the response
// status and, if non-empty, the expected message.
func call(base string, path string, body string, wantStatus int, wantMessage string) {
	res, err := http.Post(base+path, "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		fmt.Println("error making http request", err)
		panic(err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println("could not read response body", err)
		panic(err)
	}
	var response apiResponse
	if err := json.Unmarshal(resBody, &response); err != nil {
		fmt.Println("could not unmarshal JSON", err)
		panic(err)
	}
	if res.StatusCode != wantStatus {
		panic(fmt.Sprintf("POST %s: got status %d, want %d (body: %s)",
			path, res.StatusCode, wantStatus, resBody))
	}
	if wantMessage != "" && response.Message != wantMessage {
		panic(fmt.Sprintf("POST %s: got message %q, want %q", path, response.Message, wantMessage))
	}
	fmt.Printf("POST %s: %s %s%s\n", path, res.Status, response.Message, response.Error)
}
