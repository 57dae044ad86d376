package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rontwo/edgar-data/pkg/core/edgar"
	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

// FundamentalsRepo stores the resolved accounting concepts of parsed
// filings, one row per filing and reporting period.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS filing_fundamentals (
//	  cik TEXT NOT NULL,
//	  accession_number TEXT NOT NULL,
//	  form_type TEXT,
//	  period_end_date DATE,
//	  fundamentals_json JSONB,
//	  updated_at TIMESTAMPTZ,
//	  PRIMARY KEY (cik, accession_number)
//	);
type FundamentalsRepo struct {
	pool *pgxpool.Pool
}

// NewFundamentalsRepo creates a repository on the given pool; nil uses
// the package pool from InitDB.
func NewFundamentalsRepo(pool *pgxpool.Pool) *FundamentalsRepo {
	return &FundamentalsRepo{pool: pool}
}

func (r *FundamentalsRepo) getPool() (*pgxpool.Pool, error) {
	p := r.pool
	if p == nil {
		p = GetPool()
	}
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	return p, nil
}

// StoredFact is the persisted shape of one resolved fact.
type StoredFact struct {
	Value   float64 `json:"value"`
	UnitRef string  `json:"unit_ref,omitempty"`
}

// filingRecord is the JSONB payload for one filing.
type filingRecord struct {
	Facts map[string]StoredFact `json:"facts"`
	Text  map[string]string     `json:"text"`
}

func recordFromFields(fields *xbrl.FieldsDataset) filingRecord {
	record := filingRecord{
		Facts: make(map[string]StoredFact),
		Text:  fields.Texts(),
	}
	for name, fact := range fields.Facts() {
		record.Facts[name] = StoredFact{Value: fact.Value, UnitRef: fact.UnitRef}
	}
	return record
}

// Save upserts the filing's resolved fundamentals, keyed by CIK and
// accession number. A filing without a parsed instance document is
// an error.
func (r *FundamentalsRepo) Save(ctx context.Context, filing *edgar.Filing) error {
	p, err := r.getPool()
	if err != nil {
		return err
	}
	if filing.Document == nil {
		return fmt.Errorf("filing %s has no parsed instance document", filing.AccessionNumber)
	}

	jsonData, err := json.Marshal(recordFromFields(filing.Document.Fields))
	if err != nil {
		return fmt.Errorf("failed to marshal fundamentals: %w", err)
	}

	query := `
		INSERT INTO filing_fundamentals (cik, accession_number, form_type, period_end_date, fundamentals_json, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cik, accession_number)
		DO UPDATE SET
			form_type = EXCLUDED.form_type,
			period_end_date = EXCLUDED.period_end_date,
			fundamentals_json = EXCLUDED.fundamentals_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = p.Exec(ctx, query,
		filing.CIK, filing.AccessionNumber, filing.FormType, filing.PeriodEndDate, jsonData, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save fundamentals: %w", err)
	}
	return nil
}

// StoredFundamentals is one loaded row.
type StoredFundamentals struct {
	CIK             string
	AccessionNumber string
	FormType        string
	PeriodEndDate   time.Time
	Facts           map[string]StoredFact
	Text            map[string]string
}

// Load retrieves the stored fundamentals of one filing.
func (r *FundamentalsRepo) Load(ctx context.Context, cik, accession string) (*StoredFundamentals, error) {
	p, err := r.getPool()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT form_type, period_end_date, fundamentals_json
		FROM filing_fundamentals
		WHERE cik = $1 AND accession_number = $2
	`

	stored := &StoredFundamentals{CIK: cik, AccessionNumber: accession}
	var jsonData []byte
	err = p.QueryRow(ctx, query, cik, accession).Scan(&stored.FormType, &stored.PeriodEndDate, &jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no fundamentals stored for %s/%s", cik, accession)
		}
		return nil, fmt.Errorf("failed to load fundamentals: %w", err)
	}

	var record filingRecord
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fundamentals: %w", err)
	}
	stored.Facts = record.Facts
	stored.Text = record.Text
	return stored, nil
}
