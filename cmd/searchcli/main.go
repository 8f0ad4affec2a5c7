package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fmendezl/boolfind/client"
	"github.com/fmendezl/boolfind/logger"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the search server")
	query := flag.String("q", "", "boolean query (AND / OR / NOT, parentheses)")
	top := flag.Int("top", client.DefaultTop, "maximum number of results")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: searchcli -q <query> [-top N] [-server URL]")
		os.Exit(2)
	}

	searchClient := client.New(*server, &http.Client{Timeout: 15 * time.Second}, logger.New("warn"))
	searchUI := client.NewSearchUI(searchClient, client.NewWriterView(os.Stdout))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	searchUI.Submit(ctx, *query, *top)
}
