package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
	"github.com/vfg2006/radiology-workload-api/pkg/utils"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const utf8BOM = "\ufeff"

// SheetIntegrator lê uma planilha publicada como CSV (exportação pública do Google Sheets)
type SheetIntegrator struct {
	name       string
	csvURL     string
	schema     domain.SchemaDescriptor
	httpClient *http.Client
}

// NewManualSheet é a planilha preenchida à mão, sem histórico de envios
func NewManualSheet(cfg config.Sheets) *SheetIntegrator {
	return newSheetIntegrator(config.SourceManualSheet, cfg.ManualCSVURL, domain.CanonicalSchema())
}

// NewFormSheet é a planilha de respostas do formulário; cada resposta traz o carimbo de envio
func NewFormSheet(cfg config.Sheets) *SheetIntegrator {
	schema := domain.CanonicalSchema().WithSubmissionTimestamp(cfg.FormTimestampColumn)
	return newSheetIntegrator(config.SourceFormSheet, cfg.FormCSVURL, schema)
}

func newSheetIntegrator(name, csvURL string, schema domain.SchemaDescriptor) *SheetIntegrator {
	return &SheetIntegrator{
		name:   name,
		csvURL: csvURL,
		schema: schema,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *SheetIntegrator) Name() string {
	return s.name
}

func (s *SheetIntegrator) Schema() domain.SchemaDescriptor {
	return s.schema
}

func (s *SheetIntegrator) FetchRows(ctx context.Context) ([]domain.RawRecord, error) {
	if s.csvURL == "" {
		return nil, errors.Errorf("%s: URL da planilha não configurada", s.name)
	}

	data, err := utils.MakeRequest(ctx, s.httpClient, s.csvURL)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao baixar a planilha", s.name)
	}

	data, err = DecodeText(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: codificação da planilha não reconhecida", s.name)
	}

	records, err := ParseCSV(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao ler o CSV", s.name)
	}
	return records, nil
}

// DecodeText devolve o conteúdo em UTF-8. Exportações do Excel em máquinas chinesas
// saem em GB18030; qualquer conteúdo que não seja UTF-8 válido é tratado assim.
func DecodeText(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}
	decoded, _, err := transform.Bytes(simplifiedchinese.GB18030.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// ParseCSV converte um CSV com cabeçalho na primeira linha em linhas brutas.
// Linhas com menos colunas que o cabeçalho são aceitas; colunas a mais são ignoradas.
func ParseCSV(r io.Reader) ([]domain.RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return readRecords(reader)
}

// readRecords lê o cabeçalho e as linhas do leitor. Uma linha malformada é descartada
// sem abortar a planilha; apenas erros de leitura interrompem.
func readRecords(reader *csv.Reader) ([]domain.RawRecord, error) {
	header, err := reader.Read()
	if err == io.EOF {
		return []domain.RawRecord{}, nil
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], utf8BOM))
	}

	records := make([]domain.RawRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logrus.WithFields(logrus.Fields{
				"line":  parseErr.Line,
				"error": parseErr.Err,
			}).Warn("Linha malformada da planilha ignorada")
			continue
		}
		if err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}

		record := make(domain.RawRecord, len(header))
		for i, column := range header {
			if column == "" || i >= len(row) {
				continue
			}
			record[column] = row[i]
		}
		records = append(records, record)
	}

	return records, nil
}

func isBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
