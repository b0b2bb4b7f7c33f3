package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/spotlight"
	"github.com/fwojciec/spotlight/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkModImport measures importing a translation database batch.
func BenchmarkModImport(b *testing.B) {
	const recordsPerImport = 1000

	records := make([]*spotlight.ModRecord, recordsPerImport)
	for i := range records {
		records[i] = &spotlight.ModRecord{
			ID:             i + 1,
			CurseForgeSlug: fmt.Sprintf("mod-%d", i),
			ModrinthSlug:   fmt.Sprintf("mod-%d", i),
			Name:           fmt.Sprintf("模组%d", i),
		}
	}

	for i := 0; i < b.N; i++ {
		b.StopTimer()

		dbPath := filepath.Join(b.TempDir(), fmt.Sprintf("bench%d.db", i))
		db := sqlite.NewDB(dbPath)
		require.NoError(b, db.Open())
		mods := sqlite.NewModDatabase(db)

		b.StartTimer()

		if err := mods.CreateModRecords(context.Background(), records); err != nil {
			b.Fatal(err)
		}

		b.StopTimer()
		db.Close()
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}
}

// BenchmarkFindModRecords measures the full scan the query translator performs.
func BenchmarkFindModRecords(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	mods := sqlite.NewModDatabase(db)
	records := make([]*spotlight.ModRecord, 5000)
	for i := range records {
		records[i] = &spotlight.ModRecord{ID: i + 1, CurseForgeSlug: fmt.Sprintf("mod-%d", i), Name: fmt.Sprintf("模组%d", i)}
	}
	require.NoError(b, mods.CreateModRecords(context.Background(), records))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := mods.FindModRecords(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
