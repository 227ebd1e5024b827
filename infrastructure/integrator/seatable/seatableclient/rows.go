package seatableclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type listRowsResponse struct {
	Rows []map[string]any `json:"rows"`
}

type appendRowRequest struct {
	TableName string         `json:"table_name"`
	Row       map[string]any `json:"row"`
}

// ListRows lê uma página de linhas da tabela, na ordem de inserção
func (c *SeaTableClient) ListRows(ctx context.Context, tableName string, start, limit int) ([]map[string]any, error) {
	query := url.Values{}
	query.Set("table_name", tableName)
	query.Set("start", strconv.Itoa(start))
	query.Set("limit", strconv.Itoa(limit))

	var response listRowsResponse
	if err := c.do(ctx, http.MethodGet, "/rows/", query, nil, &response); err != nil {
		return nil, err
	}
	return response.Rows, nil
}

// AppendRow acrescenta uma linha ao fim da tabela
func (c *SeaTableClient) AppendRow(ctx context.Context, tableName string, row map[string]any) error {
	return c.do(ctx, http.MethodPost, "/rows/", nil, appendRowRequest{TableName: tableName, Row: row}, nil)
}
