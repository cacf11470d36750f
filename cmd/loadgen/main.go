package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"minishop/internal/config"
	"minishop/internal/perf"
)

func main() {
	clusterFlag := flag.Bool("cluster", false, "force cluster deployment mode")
	concurrency := flag.Int("concurrency", 4, "number of concurrent workers")
	duration := flag.Duration("duration", 30*time.Second, "how long to run")
	flag.Parse()

	cfg := config.Load(*clusterFlag)
	resolver := cfg.Resolver()

	client := &http.Client{Timeout: 10 * time.Second}
	result, err := perf.Run(context.Background(), client, resolver, perf.DefaultTasks(), *concurrency, *duration, log.Default())
	if err != nil {
		log.Fatal(err)
	}
	result.Report(os.Stdout)
}
