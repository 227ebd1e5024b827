package seatableclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// O token de acesso da base vale 3 dias; renovamos antes disso
const accessTokenTTL = 48 * time.Hour

var ErrUnauthorized = errors.New("seatable: token recusado")

type Client interface {
	ListRows(ctx context.Context, tableName string, start, limit int) ([]map[string]any, error)
	AppendRow(ctx context.Context, tableName string, row map[string]any) error
}

// accessToken é a resposta de app-access-token: o token da base e o servidor que a hospeda
type accessToken struct {
	AccessToken  string `json:"access_token"`
	DTableUUID   string `json:"dtable_uuid"`
	DTableServer string `json:"dtable_server"`
	fetchedAt    time.Time
}

type SeaTableClient struct {
	httpClient *http.Client
	serverURL  string
	apiToken   string
	limiter    *rate.Limiter

	tokenMutex sync.Mutex
	token      *accessToken
	now        func() time.Time
}

func NewClient(cfg config.SeaTable) Client {
	limit := rate.Inf
	if cfg.RequestsPerSec > 0 {
		limit = rate.Limit(cfg.RequestsPerSec)
	}

	return &SeaTableClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		serverURL: strings.TrimSuffix(cfg.ServerURL, "/"),
		apiToken:  cfg.APIToken,
		limiter:   rate.NewLimiter(limit, 1),
		now:       time.Now,
	}
}

// ensureToken troca o API token da base por um token de acesso, reaproveitando o atual enquanto válido
func (c *SeaTableClient) ensureToken(ctx context.Context) (*accessToken, error) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()

	if c.token != nil && c.now().Sub(c.token.fetchedAt) < accessTokenTTL {
		return c.token, nil
	}

	if c.apiToken == "" {
		return nil, errors.New("seatable: SEATABLE_API_TOKEN não configurado")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "seatable: aguardando limite de requisições")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/v2.1/dtable/app-access-token/", nil)
	if err != nil {
		return nil, errors.Wrap(err, "seatable: erro ao criar a requisição de token")
	}
	req.Header.Set("Authorization", "Token "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "seatable: erro ao obter token de acesso")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("seatable: token de acesso recusado com status %s: %s", resp.Status, string(body))
	}

	token := &accessToken{}
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		return nil, errors.Wrap(err, "seatable: erro ao decodificar token de acesso")
	}
	if token.AccessToken == "" || token.DTableUUID == "" {
		return nil, errors.New("seatable: resposta de token incompleta")
	}
	token.fetchedAt = c.now()

	c.token = token
	logrus.WithField("dtable_uuid", token.DTableUUID).Debug("Token de acesso do SeaTable obtido")

	return token, nil
}

func (c *SeaTableClient) dropToken() {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()
	c.token = nil
}

// do executa uma chamada à API de linhas, renovando o token uma vez se ele for recusado
func (c *SeaTableClient) do(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	err := c.doOnce(ctx, method, path, query, payload, out)
	if errors.Is(err, ErrUnauthorized) {
		logrus.Info("Token do SeaTable recusado, renovando")
		c.dropToken()
		err = c.doOnce(ctx, method, path, query, payload, out)
	}
	return err
}

func (c *SeaTableClient) doOnce(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "seatable: aguardando limite de requisições")
	}

	endpoint := strings.TrimSuffix(token.DTableServer, "/") + "/api/v1/dtables/" + token.DTableUUID + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "seatable: erro ao codificar o corpo")
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return errors.Wrap(err, "seatable: erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "Token "+token.AccessToken)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "seatable: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("seatable: requisição falhou com status %s: %s", resp.Status, string(message))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "seatable: erro ao decodificar a resposta")
	}
	return nil
}
