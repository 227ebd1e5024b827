package workbook

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WorkbookIntegrator lê um arquivo .xlsx local com cabeçalho na primeira linha
type WorkbookIntegrator struct {
	path  string
	sheet string
}

func NewWorkbookIntegrator(cfg config.Workbook) *WorkbookIntegrator {
	return &WorkbookIntegrator{
		path:  cfg.Path,
		sheet: cfg.Sheet,
	}
}

func (w *WorkbookIntegrator) Name() string {
	return config.SourceWorkbook
}

func (w *WorkbookIntegrator) Schema() domain.SchemaDescriptor {
	return domain.CanonicalSchema()
}

func (w *WorkbookIntegrator) FetchRows(ctx context.Context) ([]domain.RawRecord, error) {
	if w.path == "" {
		return nil, errors.New("workbook: WORKBOOK_PATH não configurado")
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, errors.Wrapf(err, "workbook: erro ao abrir %s", w.path)
	}
	defer f.Close()

	sheet := w.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "workbook: erro ao ler a aba %s", sheet)
	}

	records := make([]domain.RawRecord, 0)
	if len(rows) == 0 {
		return records, nil
	}

	header := rows[0]
	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row := rows[rowIdx]
		record := make(domain.RawRecord, len(header))
		blank := true
		for i, column := range header {
			column = strings.TrimSpace(column)
			if column == "" || i >= len(row) {
				continue
			}
			record[column] = row[i]
			if strings.TrimSpace(row[i]) != "" {
				blank = false
			}
		}
		if !blank {
			records = append(records, record)
		}
	}

	return records, nil
}
