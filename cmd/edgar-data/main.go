package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"

	"github.com/rontwo/edgar-data/pkg/core/config"
	"github.com/rontwo/edgar-data/pkg/core/edgar"
	"github.com/rontwo/edgar-data/pkg/core/store"
	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

func main() {
	ticker := flag.String("ticker", "", "company ticker symbol (required)")
	configPath := flag.String("config", "config.yaml", "path to config file")
	quarter := flag.Bool("quarter", false, "resolve the latest quarterly period instead of annual")
	yearOffset := flag.Int("year-offset", 0, "report the period ending N years before the filing's own")
	segments := flag.String("segments", "", "also print per-segment values for this concept (e.g. Revenues)")
	persist := flag.Bool("persist", false, "store the resolved fundamentals in the database")
	flag.Parse()

	if *ticker == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using ambient environment")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := edgar.NewClientWithRate(cfg.RequestsPerSecond)
	client.CleanHTML = cfg.CleanHTML
	if cfg.Contact != "" {
		client.Agent = fmt.Sprintf("edgar-data/1.0 (%s)", cfg.Contact)
	}
	if cfg.CacheDir != "" {
		client.Cache = edgar.NewDocumentCacheWithDir(cfg.CacheDir)
	}

	formTypes := []string{"10-K", "20-F"}
	if *quarter {
		formTypes = []string{"10-Q"}
	}

	cik, err := client.LookupCIK(ctx, nil, *ticker)
	if err != nil {
		log.Fatalf("cik lookup: %v", err)
	}
	log.Printf("resolved %s to CIK %s", *ticker, cik)

	filings, err := client.Filings(ctx, cik, edgar.FilingQuery{
		FormTypes:      formTypes,
		Limit:          1,
		FetchDocuments: true,
	})
	if err != nil {
		log.Fatalf("filings: %v", err)
	}
	if len(filings) == 0 || filings[0].Document == nil {
		log.Fatalf("no parseable %v filing found for %s", formTypes, *ticker)
	}
	filing := filings[0]
	doc := filing.Document

	if *yearOffset != 0 || *quarter {
		if err := doc.LoadPeriod(*yearOffset, *quarter); err != nil {
			log.Fatalf("period resolution: %v", err)
		}
	}

	fmt.Printf("%s  %s  filed %s  period %s\n",
		doc.Fields.Text("EntityRegistrantName"),
		filing.FormType,
		filing.FilingDate.Format("2006-01-02"),
		doc.BalanceSheetDate())

	printFundamentals(doc)

	if *segments != "" {
		printSegments(doc, *segments)
	}

	if *persist {
		if cfg.DatabaseURL == "" {
			log.Fatal("persist requested but no database URL configured")
		}
		if err := store.InitDB(ctx, cfg.DatabaseURL); err != nil {
			log.Fatalf("database: %v", err)
		}
		defer store.Close()

		repo := store.NewFundamentalsRepo(nil)
		if err := repo.Save(ctx, filing); err != nil {
			log.Fatalf("save: %v", err)
		}
		log.Printf("stored fundamentals for %s/%s", filing.CIK, filing.AccessionNumber)
	}
}

func printFundamentals(doc *xbrl.Document) {
	facts := doc.Fields.Facts()
	names := make([]string, 0, len(facts))
	for name := range facts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fact := facts[name]
		if cur := fact.Currency(); cur != nil {
			fmt.Printf("  %-70s %20.2f %s\n", name, fact.Value, cur.Code)
			continue
		}
		fmt.Printf("  %-70s %20.4f\n", name, fact.Value)
	}
}

func printSegments(doc *xbrl.Document, concept string) {
	values, err := doc.SegmentValues(concept)
	if err != nil {
		log.Printf("segments: %v", err)
	}
	if len(values) == 0 {
		return
	}
	fmt.Printf("\n%s by business segment:\n", concept)
	for _, sv := range values {
		fmt.Printf("  %-70s %20.2f\n", sv.Segment, sv.Value)
	}
}
