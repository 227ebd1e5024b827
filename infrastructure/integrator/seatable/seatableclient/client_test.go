package seatableclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/config"
)

type fakeSeaTable struct {
	server        *httptest.Server
	tokenRequests atomic.Int32
	rejectNext    atomic.Bool
	rows          []map[string]any
	appended      []byte
}

func newFakeSeaTable(t *testing.T) *fakeSeaTable {
	t.Helper()
	fake := &fakeSeaTable{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2.1/dtable/app-access-token/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token api-token" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		n := fake.tokenRequests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"access_token":"access-`+strconv.Itoa(int(n))+`","dtable_uuid":"uuid-1","dtable_server":"`+fake.server.URL+`/dtable-server/"}`)
	})
	mux.HandleFunc("/dtable-server/api/v1/dtables/uuid-1/rows/", func(w http.ResponseWriter, r *http.Request) {
		if fake.rejectNext.CompareAndSwap(true, false) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "业务数据录入", r.URL.Query().Get("table_name"))
			start, _ := strconv.Atoi(r.URL.Query().Get("start"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			end := start + limit
			if start > len(fake.rows) {
				start = len(fake.rows)
			}
			if end > len(fake.rows) {
				end = len(fake.rows)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(listRowsResponse{Rows: fake.rows[start:end]})
		case http.MethodPost:
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			fake.appended, _ = io.ReadAll(r.Body)
			io.WriteString(w, `{"_id":"row-1"}`)
		}
	})

	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)
	return fake
}

func newTestClient(fake *fakeSeaTable) *SeaTableClient {
	return NewClient(config.SeaTable{
		ServerURL: fake.server.URL + "/",
		APIToken:  "api-token",
	}).(*SeaTableClient)
}

func TestSeaTableClient_ListRows(t *testing.T) {
	fake := newFakeSeaTable(t)
	fake.rows = []map[string]any{
		{"日期": "2024-05-10", "常规CT人": 12.0},
		{"日期": "2024-05-11", "常规CT人": 3.0},
		{"日期": "2024-05-12", "常规CT人": 4.0},
	}
	client := newTestClient(fake)

	rows, err := client.ListRows(context.Background(), "业务数据录入", 0, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-10", rows[0]["日期"])
	assert.Equal(t, 12.0, rows[0]["常规CT人"])

	rows, err = client.ListRows(context.Background(), "业务数据录入", 2, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// O token é reaproveitado entre as chamadas
	assert.Equal(t, int32(1), fake.tokenRequests.Load())
}

func TestSeaTableClient_RefreshesTokenOnUnauthorized(t *testing.T) {
	fake := newFakeSeaTable(t)
	client := newTestClient(fake)

	_, err := client.ListRows(context.Background(), "业务数据录入", 0, 10)
	require.NoError(t, err)

	fake.rejectNext.Store(true)
	_, err = client.ListRows(context.Background(), "业务数据录入", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int32(2), fake.tokenRequests.Load())
}

func TestSeaTableClient_RefreshesExpiredToken(t *testing.T) {
	fake := newFakeSeaTable(t)
	client := newTestClient(fake)

	_, err := client.ListRows(context.Background(), "业务数据录入", 0, 10)
	require.NoError(t, err)

	client.now = func() time.Time { return time.Now().Add(accessTokenTTL + time.Minute) }
	_, err = client.ListRows(context.Background(), "业务数据录入", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, int32(2), fake.tokenRequests.Load())
}

func TestSeaTableClient_AppendRow(t *testing.T) {
	fake := newFakeSeaTable(t)
	client := newTestClient(fake)

	err := client.AppendRow(context.Background(), "业务数据录入", map[string]any{"日期": "2024-05-10", "查体CT": 3})
	require.NoError(t, err)

	var body appendRowRequest
	require.NoError(t, json.Unmarshal(fake.appended, &body))
	assert.Equal(t, "业务数据录入", body.TableName)
	assert.Equal(t, "2024-05-10", body.Row["日期"])
	assert.Equal(t, 3.0, body.Row["查体CT"])
}

func TestSeaTableClient_Errors(t *testing.T) {
	t.Run("Sem API token", func(t *testing.T) {
		client := NewClient(config.SeaTable{ServerURL: "http://localhost"})
		_, err := client.ListRows(context.Background(), "t", 0, 10)
		assert.ErrorContains(t, err, "SEATABLE_API_TOKEN")
	})

	t.Run("API token recusado", func(t *testing.T) {
		fake := newFakeSeaTable(t)
		client := NewClient(config.SeaTable{ServerURL: fake.server.URL, APIToken: "errado"})
		_, err := client.ListRows(context.Background(), "t", 0, 10)
		assert.ErrorContains(t, err, "recusado")
	})

	t.Run("Servidor fora do ar", func(t *testing.T) {
		fake := newFakeSeaTable(t)
		client := newTestClient(fake)
		fake.server.Close()
		_, err := client.ListRows(context.Background(), "t", 0, 10)
		assert.Error(t, err)
	})
}
