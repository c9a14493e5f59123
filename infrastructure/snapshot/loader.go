package snapshot

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-agent-api/internal/domain"
	"github.com/vfg2006/sales-agent-api/pkg/utils"
)

// Colunas obrigatórias do snapshot diário
var requiredColumns = []string{
	"date",
	"region",
	"product",
	"total_sales",
	"target_daily",
	"sales_yesterday",
	"avg_7d_sales",
	"delta_vs_yesterday",
	"delta_vs_target",
	"day_name",
	"is_weekend",
}

// SnapshotLoader define a interface para carregar o snapshot diário de vendas
type SnapshotLoader interface {
	// LoadLatest retorna os registros da data mais recente presente no snapshot
	// e a quantidade de linhas descartadas por falha de validação
	LoadLatest() ([]domain.SalesRecord, int, error)
}

// Loader carrega registros de vendas a partir do snapshot corrente em CSV
type Loader struct {
	store *Store
}

// NewLoader cria um novo Loader sobre o Store informado
func NewLoader(store *Store) SnapshotLoader {
	return &Loader{store: store}
}

// LoadLatest lê o snapshot corrente, valida as colunas obrigatórias e retorna
// apenas os registros cuja data é a mais recente do arquivo. Linhas com campos
// não interpretáveis são descartadas com aviso; o restante do lote prossegue.
func (l *Loader) LoadLatest() ([]domain.SalesRecord, int, error) {
	path := l.store.CurrentPath()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrapf(ErrSnapshotNotFound, "caminho: %s", path)
		}
		return nil, 0, errors.Wrap(err, "erro ao abrir o snapshot")
	}
	defer f.Close()

	records, skipped, err := parse(f)
	if err != nil {
		return nil, 0, err
	}

	latest := latestRecords(records)

	logrus.WithFields(logrus.Fields{
		"path":         path,
		"total_rows":   len(records),
		"latest_rows":  len(latest),
		"skipped_rows": skipped,
	}).Info("Snapshot de vendas carregado")

	return latest, skipped, nil
}

// parse lê todas as linhas do CSV e converte para registros do domínio
func parse(r io.Reader) ([]domain.SalesRecord, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, ErrSnapshotEmpty
	}
	if err != nil {
		return nil, 0, errors.Wrap(err, "erro ao ler o cabeçalho do snapshot")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var records []domain.SalesRecord
	skipped := 0
	line := 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				logrus.WithField("line", line).Warn("Linha do snapshot com número de colunas inválido, descartada")
				skipped++
				continue
			}
			return nil, 0, errors.Wrap(err, "erro ao ler linha do snapshot")
		}

		record, err := parseRow(row, columns)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"line":  line,
				"error": err.Error(),
			}).Warn("Linha do snapshot com campo inválido, descartada")
			skipped++
			continue
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, skipped, ErrSnapshotEmpty
	}

	return records, skipped, nil
}

// indexColumns valida as colunas obrigatórias e mapeia o nome para a posição
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &MissingColumnError{Column: required}
		}
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int) (domain.SalesRecord, error) {
	field := func(name string) string {
		return strings.TrimSpace(row[columns[name]])
	}

	date, err := utils.ParseDate(field("date"))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, "campo date inválido")
	}

	record := domain.SalesRecord{
		Date:    date,
		Region:  field("region"),
		Product: field("product"),
		DayName: field("day_name"),
	}

	numericFields := []struct {
		name string
		dst  *float64
	}{
		{"total_sales", &record.TotalSales},
		{"target_daily", &record.TargetDaily},
		{"sales_yesterday", &record.SalesYesterday},
		{"avg_7d_sales", &record.Avg7dSales},
		{"delta_vs_yesterday", &record.DeltaVsYesterday},
		{"delta_vs_target", &record.DeltaVsTarget},
	}

	for _, nf := range numericFields {
		value, err := strconv.ParseFloat(field(nf.name), 64)
		if err != nil {
			return domain.SalesRecord{}, errors.Wrapf(err, "campo %s inválido", nf.name)
		}
		*nf.dst = value
	}

	isWeekend, err := strconv.ParseBool(field("is_weekend"))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrap(err, "campo is_weekend inválido")
	}
	record.IsWeekend = isWeekend

	return record, nil
}

// latestRecords filtra os registros cuja data é a máxima presente no snapshot
func latestRecords(records []domain.SalesRecord) []domain.SalesRecord {
	var latestDate time.Time
	for _, record := range records {
		if record.Date.After(latestDate) {
			latestDate = record.Date
		}
	}

	latest := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		if record.Date.Equal(latestDate) {
			latest = append(latest, record)
		}
	}

	return latest
}
