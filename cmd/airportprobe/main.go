// Command airportprobe sends one search to the airport API and prints the raw
// exchange: status, headers, body, and which response shape matched.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flight-alert/flight-alert-service/internal/adapter/airportapi"
	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	baseURL := flag.String("base-url", airportapi.DefaultBaseURL, "airport API base URL")
	query := flag.String("q", "new york", "search text")
	limit := flag.Int("limit", domain.DefaultSearchLimit, "page size")
	page := flag.Int("page", domain.DefaultSearchPage, "page number")
	timeout := flag.Duration("timeout", airportapi.DefaultTimeout, "request timeout")
	maxBody := flag.Int("max-body", 4096, "bytes of body to print (0 prints all)")
	verbose := flag.Bool("v", false, "log request diagnostics to stderr")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.Nop()
	if *verbose {
		log = logger.NewWithOutput(logger.Config{Level: "debug", Format: "console", ServiceName: "airportprobe"}, os.Stderr)
	}

	client := airportapi.NewClient(airportapi.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
	}, airportapi.WithLogger(log))

	start := time.Now()
	result, err := client.Probe(ctx, domain.SearchParams{Query: *query, Limit: *limit, Page: *page})
	if err != nil {
		fmt.Fprintf(os.Stderr, "airportprobe: %v\n", err)
		return 1
	}

	fmt.Println(renderReport(result, time.Since(start), *maxBody))
	if result.DecodeErr != nil {
		return 2
	}
	return 0
}
