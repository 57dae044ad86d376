package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/rontwo/edgar-data/pkg/api/fundamentals"
	"github.com/rontwo/edgar-data/pkg/core/config"
	"github.com/rontwo/edgar-data/pkg/core/edgar"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := edgar.NewClientWithRate(cfg.RequestsPerSecond)
	client.CleanHTML = cfg.CleanHTML
	if cfg.Contact != "" {
		client.Agent = fmt.Sprintf("edgar-data/1.0 (%s)", cfg.Contact)
	}
	if cfg.CacheDir != "" {
		client.Cache = edgar.NewDocumentCacheWithDir(cfg.CacheDir)
	}

	handler := fundamentals.NewHandler(client)
	http.HandleFunc("/api/fundamentals", handler.HandleFundamentals)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal(err)
	}
}
