package store

import (
	"testing"

	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

func TestRecordFromFields(t *testing.T) {
	fields := xbrl.NewFieldsDataset()
	fields.SetFact("Assets", &xbrl.Fact{Value: 100, UnitRef: "iso4217:USD"})
	fields.SetFact("ROA", &xbrl.Fact{Value: 0.12})
	fields.SetText("EntityRegistrantName", "ACME CORP")

	record := recordFromFields(fields)

	if got := record.Facts["Assets"]; got.Value != 100 || got.UnitRef != "iso4217:USD" {
		t.Errorf("Assets = %+v", got)
	}
	if got := record.Facts["ROA"]; got.Value != 0.12 || got.UnitRef != "" {
		t.Errorf("ROA = %+v", got)
	}
	if got := record.Text["EntityRegistrantName"]; got != "ACME CORP" {
		t.Errorf("EntityRegistrantName = %q", got)
	}
}

func TestRepoRequiresPool(t *testing.T) {
	repo := NewFundamentalsRepo(nil)
	if _, err := repo.getPool(); err == nil {
		t.Error("expected error before InitDB")
	}
}
