package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-agent-api/internal/config"
)

const snapshotHeader = "date,region,product,total_sales,target_daily,sales_yesterday,avg_7d_sales,delta_vs_yesterday,delta_vs_target,day_name,is_weekend"

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(config.Snapshot{
		DataDir:  t.TempDir(),
		Filename: "daily_sales.csv",
	})
}

func writeSnapshot(t *testing.T, store *Store, lines ...string) {
	t.Helper()

	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(store.CurrentPath(), []byte(content), 0o644))
}

func TestLoader_LoadLatest(t *testing.T) {
	store := newTestStore(t)
	writeSnapshot(t, store,
		snapshotHeader,
		"2025-07-15,Sudeste,Óculos de Sol,1000,950,980,990,2.0,5.26,Tuesday,false",
		"2025-07-15,Norte,Armações,880,1000,907,1000,-3.0,-12.0,Tuesday,false",
	)

	loader := NewLoader(store)

	records, skipped, err := loader.LoadLatest()
	require.NoError(t, err)

	assert.Len(t, records, 2)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "Sudeste", records[0].Region)
	assert.Equal(t, "Óculos de Sol", records[0].Product)
	assert.InDelta(t, 1000.0, records[0].TotalSales, 0.001)
	assert.InDelta(t, -12.0, records[1].DeltaVsTarget, 0.001)
	assert.False(t, records[0].IsWeekend)
}

func TestLoader_LoadLatest_FileNotFound(t *testing.T) {
	store := newTestStore(t)
	loader := NewLoader(store)

	records, _, err := loader.LoadLatest()

	assert.Nil(t, records)
	assert.True(t, errors.Is(err, ErrSnapshotNotFound))
}

func TestLoader_LoadLatest_MissingColumn(t *testing.T) {
	store := newTestStore(t)

	// Cabeçalho sem a coluna delta_vs_target
	writeSnapshot(t, store,
		"date,region,product,total_sales,target_daily,sales_yesterday,avg_7d_sales,delta_vs_yesterday,day_name,is_weekend",
		"2025-07-15,Sudeste,Óculos de Sol,1000,950,980,990,2.0,Tuesday,false",
	)

	loader := NewLoader(store)

	_, _, err := loader.LoadLatest()

	var missingColumn *MissingColumnError
	require.True(t, errors.As(err, &missingColumn))
	assert.Equal(t, "delta_vs_target", missingColumn.Column)
}

func TestLoader_LoadLatest_EmptySnapshot(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{
			name:  "Arquivo totalmente vazio",
			lines: []string{""},
		},
		{
			name:  "Apenas o cabeçalho sem linhas de dados",
			lines: []string{snapshotHeader},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			writeSnapshot(t, store, tt.lines...)

			loader := NewLoader(store)

			_, _, err := loader.LoadLatest()
			assert.True(t, errors.Is(err, ErrSnapshotEmpty))
		})
	}
}

func TestLoader_LoadLatest_SkipsMalformedRows(t *testing.T) {
	store := newTestStore(t)
	writeSnapshot(t, store,
		snapshotHeader,
		"2025-07-15,Sudeste,Óculos de Sol,1000,950,980,990,2.0,5.26,Tuesday,false",
		"2025-07-15,Norte,Armações,não-é-número,1000,907,1000,-3.0,-12.0,Tuesday,false",
		"データ,Sul,Lentes,930,1000,1160,1100,-20.0,-7.0,Tuesday,false",
	)

	loader := NewLoader(store)

	records, skipped, err := loader.LoadLatest()
	require.NoError(t, err)

	// As linhas com campo numérico ou data inválidos são descartadas; o lote continua
	assert.Len(t, records, 1)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "Sudeste", records[0].Region)
}

func TestLoader_LoadLatest_FiltersToLatestDate(t *testing.T) {
	store := newTestStore(t)
	writeSnapshot(t, store,
		snapshotHeader,
		"2025-07-14,Sudeste,Óculos de Sol,900,950,870,940,3.4,-5.26,Monday,false",
		"2025-07-15,Sudeste,Óculos de Sol,1000,950,900,990,11.1,5.26,Tuesday,false",
		"2025-07-15,Norte,Armações,880,1000,907,1000,-3.0,-12.0,Tuesday,false",
	)

	loader := NewLoader(store)

	records, skipped, err := loader.LoadLatest()
	require.NoError(t, err)

	// Apenas os registros da data mais recente entram na análise
	assert.Len(t, records, 2)
	assert.Equal(t, 0, skipped)
	for _, record := range records {
		assert.Equal(t, "2025-07-15", record.Date.Format("2006-01-02"))
	}
}

func TestStore_Save(t *testing.T) {
	store := newTestStore(t)

	content := snapshotHeader + "\n2025-07-15,Sudeste,Óculos de Sol,1000,950,980,990,2.0,5.26,Tuesday,false\n"

	archive, err := store.Save(strings.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(archive, "daily_sales_"))
	assert.True(t, strings.HasSuffix(archive, ".csv"))

	// A cópia de auditoria e o snapshot corrente devem existir com o mesmo conteúdo
	archived, err := os.ReadFile(filepath.Join(store.dataDir, archive))
	require.NoError(t, err)
	assert.Equal(t, content, string(archived))

	current, err := os.ReadFile(store.CurrentPath())
	require.NoError(t, err)
	assert.Equal(t, content, string(current))

	// O upload promovido deve ser legível pelo loader
	loader := NewLoader(store)
	records, _, err := loader.LoadLatest()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
