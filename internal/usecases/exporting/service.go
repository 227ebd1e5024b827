package exporting

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/internal/usecases/reconciling"
	"github.com/xuri/excelize/v2"
)

// SheetName é a aba gerada na exportação
const SheetName = "业务数据"

// ContentType do arquivo .xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Exporter interface {
	// ExportLedger escreve o livro reconciliado atual como .xlsx
	ExportLedger(ctx context.Context, w io.Writer) error
}

type Service struct {
	ledger reconciling.LedgerReader
}

func NewService(ledger reconciling.LedgerReader) Exporter {
	return &Service{ledger: ledger}
}

func (s *Service) ExportLedger(ctx context.Context, w io.Writer) error {
	snapshot := s.ledger.GetOrRebuild(ctx)

	if err := WriteLedger(snapshot.Ledger, w); err != nil {
		logrus.WithError(err).Error("Erro ao exportar livro para xlsx")
		return err
	}

	logrus.WithField("entries", snapshot.Ledger.Len()).Info("Livro exportado para xlsx")
	return nil
}

// Header retorna o cabeçalho com os nomes canônicos das colunas
func Header() []any {
	header := []any{domain.ColumnBusinessDate}
	for _, role := range domain.MetricRoles {
		header = append(header, domain.CanonicalColumns[role])
	}
	return header
}

// WriteLedger grava o livro em uma planilha com o cabeçalho canônico, uma linha por data
func WriteLedger(ledger domain.Ledger, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("erro ao renomear aba: %w", err)
	}

	header := Header()
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for i, entry := range ledger.Entries() {
		row := []any{entry.BusinessDate.Format(time.DateOnly)}
		for _, role := range domain.MetricRoles {
			row = append(row, entry.Value(role))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 14); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}
