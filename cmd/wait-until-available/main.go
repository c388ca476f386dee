package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Usage example on the command line:
// > go run main.go -url=http://localhost:5000/health -timeout=60
func main() {
	urlPtr := flag.String("url", "http://localhost:5000/health", "the health endpoint to poll")
	timeoutPtr := flag.Int("timeout", 120, "seconds to wait before giving up")
	flag.Parse()

	waited := 0
	for {
		if probe(*urlPtr) {
			return
		}
		if waited >= *timeoutPtr {
			fmt.Printf("service did not become available within %d seconds\n", *timeoutPtr)
			os.Exit(1)
		}
		waited += 5
		fmt.Printf("waited %d seconds\n", waited)
		time.Sleep(5 * time.Second)
	}
}

// probe performs a single health check and reports whether the service
// answered with status ok.
func probe(url string) bool {
	res, err := http.Get(url)
	if err != nil {
		fmt.Println(err)
		return false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		fmt.Println("unexpected status:", res.Status)
		return false
	}
	var health struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	if err := json.NewDecoder(res.Body).Decode(&health); err != nil {
		fmt.Println("could not decode health response:", err)
		return false
	}
	fmt.Printf("service is up: status=%s time=%s\n", health.Status, health.Time)
	return health.Status == "ok"
}
