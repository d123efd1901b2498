package sqlite_test

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	"github.com/example/facscrub/internal/adapters/sqlite"
	"github.com/example/facscrub/internal/app"
	"github.com/example/facscrub/internal/core/dedup"
	"github.com/example/facscrub/internal/db"
)

// newServices wires real repositories over an in-memory database, the way
// wire.initServices does in production.
func newServices(t *testing.T) (*sql.DB, *app.NormalizerServiceImpl, *app.AuditServiceImpl) {
	t.Helper()
	testDB := setupTestDB(t)

	taskRepo := sqlite.NewTaskRepository(testDB)
	inspectionRepo := sqlite.NewInspectionRepository(testDB)
	consumableRepo := sqlite.NewConsumableRepository(testDB)

	normalizer := app.NewNormalizerService(taskRepo, inspectionRepo, consumableRepo)
	audit := app.NewAuditService(taskRepo, inspectionRepo, consumableRepo)

	return testDB, normalizer, audit
}

func TestPipeline_FullRunOverFixtures(t *testing.T) {
	testDB, normalizer, audit := newServices(t)
	ctx := context.Background()

	if err := db.SeedFixtures(testDB); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	// The seeded data must start dirty
	before, err := audit.Audit(ctx)
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if before.Clean() {
		t.Fatal("expected violations in seeded fixtures")
	}

	report, err := normalizer.Run(ctx)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Field repairs keep every row; filtering and dedup shrink consumables
	wantCounts := map[string][2]int64{
		"tasks":       {12, 12},
		"inspections": {8, 8},
		"consumables": {14, 7},
	}
	for _, tc := range report.Tables {
		want := wantCounts[tc.Table]
		if tc.Before != want[0] || tc.After != want[1] {
			t.Errorf("%s: %d → %d rows, want %d → %d", tc.Table, tc.Before, tc.After, want[0], want[1])
		}
	}

	// Every invariant must hold afterwards
	after, err := audit.Audit(ctx)
	if err != nil {
		t.Fatalf("Audit failed: %v", err)
	}
	if !after.Clean() {
		for _, table := range after.Tables {
			for _, v := range table.Violations {
				t.Errorf("%s row %d: %v", table.Table, v.RowID, v.Problems)
			}
		}
	}
}

func TestPipeline_DuplicateCollapseKeepsMaxID(t *testing.T) {
	testDB, normalizer, _ := newServices(t)
	ctx := context.Background()

	// Three rows with the same natural key once canonicalized
	seedConsumable(t, testDB, "2025-03-10", 104, "Liquid Soap", 4, 20.00)
	seedConsumable(t, testDB, "2025-03-10", 104, " liquid soap ", 6, 30.00)
	id3 := seedConsumable(t, testDB, "2025-03-10", 104, "LIQUID SOAP", 5, 25.00)

	if _, err := normalizer.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	repo := sqlite.NewConsumableRepository(testDB)
	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 survivor, got %d", len(records))
	}
	if records[0].UsageID != id3 {
		t.Errorf("survivor usage_id = %d, want %d", records[0].UsageID, id3)
	}
	if records[0].ResourceType != "LIQUID SOAP" {
		t.Errorf("survivor resource_type = %q, want LIQUID SOAP", records[0].ResourceType)
	}
}

func TestPipeline_DedupBeforeCanonicalizationMissesDuplicates(t *testing.T) {
	// Running duplicate detection on uncanonicalized data fails to collapse
	// "Soap" and "SOAP", which is why the pipeline order is mandatory.
	testDB, _, _ := newServices(t)
	ctx := context.Background()
	repo := sqlite.NewConsumableRepository(testDB)

	seedConsumable(t, testDB, "2025-03-10", 104, "Soap", 4, 20.00)
	seedConsumable(t, testDB, "2025-03-10", 104, "SOAP", 6, 30.00)

	collapse := func() int64 {
		keys, err := repo.ListUsageKeys(ctx)
		if err != nil {
			t.Fatalf("ListUsageKeys failed: %v", err)
		}
		entries := make([]dedup.Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, dedup.Entry{
				UsageID: k.UsageID,
				Key:     dedup.Key{UsageDate: k.UsageDate, LocationID: k.LocationID, ResourceType: k.ResourceType},
			})
		}
		condemned := dedup.Condemned(entries)
		if len(condemned) == 0 {
			return 0
		}
		deleted, err := repo.DeleteByUsageIDs(ctx, condemned)
		if err != nil {
			t.Fatalf("DeleteByUsageIDs failed: %v", err)
		}
		return deleted
	}

	// Wrong order: dedup first sees two distinct keys and deletes nothing
	if deleted := collapse(); deleted != 0 {
		t.Errorf("dedup before canonicalization deleted %d rows, want 0", deleted)
	}

	// Correct order: canonicalize, then dedup collapses the pair
	if _, err := repo.CanonicalizeResourceTypes(ctx); err != nil {
		t.Fatalf("CanonicalizeResourceTypes failed: %v", err)
	}
	if deleted := collapse(); deleted != 1 {
		t.Errorf("dedup after canonicalization deleted %d rows, want 1", deleted)
	}
}

func TestPipeline_SecondRunChangesNothing(t *testing.T) {
	testDB, normalizer, _ := newServices(t)
	ctx := context.Background()

	if err := db.SeedFixtures(testDB); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	if _, err := normalizer.Run(ctx); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	firstSample, err := normalizer.Sample(ctx, 100)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	// Offending rows no longer exist: the second run deletes nothing and
	// repairs nothing.
	report, err := normalizer.Run(ctx)
	if err != nil {
		t.Fatalf("second Run failed: %v", err)
	}
	if total := report.TotalAffected(); total != 0 {
		t.Errorf("second run touched %d rows, want 0", total)
	}

	secondSample, err := normalizer.Sample(ctx, 100)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if !reflect.DeepEqual(firstSample, secondSample) {
		t.Error("table contents changed on second run")
	}
}

func TestPipeline_SampleIsBounded(t *testing.T) {
	testDB, normalizer, _ := newServices(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		seedConsumable(t, testDB, "2025-03-10", int64(100+i), "SOAP", 4, 20.00)
	}

	samples, err := normalizer.Sample(ctx, 10)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if len(samples.Consumables) != 10 {
		t.Errorf("sample returned %d consumable rows, want 10", len(samples.Consumables))
	}
	if len(samples.Tasks) != 0 {
		t.Errorf("sample returned %d task rows, want 0", len(samples.Tasks))
	}
}
