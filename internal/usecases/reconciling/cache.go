package reconciling

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// CacheState descreve o estado do snapshot em cache
type CacheState string

const (
	CacheStateEmpty       CacheState = "empty"
	CacheStateFresh       CacheState = "fresh"
	CacheStateStale       CacheState = "stale"
	CacheStateInvalidated CacheState = "invalidated"
)

// LedgerCache guarda o último snapshot do livro para todo o processo.
//
// O snapshot nunca é alterado: uma reconstrução cria um novo e troca o ponteiro
// atomicamente, e leitores em andamento continuam com o anterior. Invalidate
// incrementa a versão; um snapshot de versão antiga nunca é servido nem gravado.
type LedgerCache struct {
	builder LedgerBuilder
	ttl     time.Duration
	metrics *metrics.Registry
	now     func() time.Time

	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	group   singleflight.Group
}

func NewLedgerCache(builder LedgerBuilder, ttl time.Duration, m *metrics.Registry) *LedgerCache {
	return &LedgerCache{
		builder: builder,
		ttl:     ttl,
		metrics: m,
		now:     time.Now,
	}
}

// GetOrRebuild retorna o snapshot válido ou reconstrói o livro.
// Reconstruções simultâneas da mesma versão são feitas uma única vez.
func (c *LedgerCache) GetOrRebuild(ctx context.Context) *Snapshot {
	version := c.version.Load()

	if snapshot := c.current.Load(); c.isValid(snapshot, version) {
		c.metrics.CacheHit()
		return snapshot
	}

	c.metrics.CacheMiss()

	result, _, _ := c.group.Do(strconv.FormatUint(version, 10), func() (any, error) {
		if snapshot := c.current.Load(); c.isValid(snapshot, version) {
			return snapshot, nil
		}

		// Um leitor que cancela a própria requisição não deve abortar a reconstrução dos demais
		snapshot := c.builder.Build(context.WithoutCancel(ctx))
		if snapshot == nil {
			snapshot = &Snapshot{}
		}
		snapshot.Version = version
		snapshot.BuiltAt = c.now()
		snapshot.ExpiresAt = snapshot.BuiltAt.Add(c.ttl)

		c.store(snapshot)
		return snapshot, nil
	})

	return result.(*Snapshot)
}

// Invalidate descarta o snapshot atual; o próximo acesso reconstrói o livro
func (c *LedgerCache) Invalidate() {
	version := c.version.Add(1)
	c.metrics.CacheInvalidated()
	logrus.WithField("version", version).Info("Cache do livro invalidado")
}

// Refresh invalida e reconstrói imediatamente
func (c *LedgerCache) Refresh(ctx context.Context) *Snapshot {
	c.Invalidate()
	return c.GetOrRebuild(ctx)
}

// Peek retorna o snapshot atual sem reconstruir, mesmo que esteja vencido
func (c *LedgerCache) Peek() *Snapshot {
	return c.current.Load()
}

// State informa o estado do cache sem provocar reconstrução
func (c *LedgerCache) State() CacheState {
	snapshot := c.current.Load()
	switch {
	case snapshot == nil:
		return CacheStateEmpty
	case snapshot.Version != c.version.Load():
		return CacheStateInvalidated
	case !c.now().Before(snapshot.ExpiresAt):
		return CacheStateStale
	default:
		return CacheStateFresh
	}
}

func (c *LedgerCache) isValid(snapshot *Snapshot, version uint64) bool {
	return snapshot != nil && snapshot.Version == version && c.now().Before(snapshot.ExpiresAt)
}

// store grava o snapshot apenas se ele não for mais antigo que o atual
func (c *LedgerCache) store(snapshot *Snapshot) {
	for {
		current := c.current.Load()
		if current != nil && current.Version > snapshot.Version {
			return
		}
		if c.current.CompareAndSwap(current, snapshot) {
			return
		}
	}
}
