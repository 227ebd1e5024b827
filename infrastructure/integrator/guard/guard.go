package guard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

const (
	defaultFailuresToTrip = 3
	defaultOpenTimeout    = 2 * time.Minute
)

// Source é o contrato de leitura protegido pelo disjuntor
type Source interface {
	Name() string
	Schema() domain.SchemaDescriptor
	FetchRows(ctx context.Context) ([]domain.RawRecord, error)
}

type Settings struct {
	// FailuresToTrip é a quantidade de falhas seguidas que abre o circuito
	FailuresToTrip uint32
	// OpenTimeout é quanto tempo o circuito fica aberto antes de testar a origem de novo
	OpenTimeout time.Duration
}

// GuardedSource envolve uma origem com um disjuntor: origem que falha seguidamente
// deixa de ser consultada por um tempo e responde com erro imediato
type GuardedSource struct {
	source  Source
	breaker *gobreaker.CircuitBreaker
}

func Wrap(source Source, settings Settings) *GuardedSource {
	if settings.FailuresToTrip == 0 {
		settings.FailuresToTrip = defaultFailuresToTrip
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = defaultOpenTimeout
	}

	st := gobreaker.Settings{
		Name:        source.Name(),
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
	}
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= settings.FailuresToTrip
	}
	st.OnStateChange = func(name string, from, to gobreaker.State) {
		logrus.WithFields(logrus.Fields{
			"source": name,
			"from":   from.String(),
			"to":     to.String(),
		}).Warn("Estado do disjuntor da origem alterado")
	}
	// Cancelamento por quem chamou não conta como falha da origem
	st.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}

	return &GuardedSource{
		source:  source,
		breaker: gobreaker.NewCircuitBreaker(st),
	}
}

func (g *GuardedSource) Name() string {
	return g.source.Name()
}

func (g *GuardedSource) Schema() domain.SchemaDescriptor {
	return g.source.Schema()
}

func (g *GuardedSource) FetchRows(ctx context.Context) ([]domain.RawRecord, error) {
	result, err := g.breaker.Execute(func() (any, error) {
		return g.source.FetchRows(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrapf(err, "%s: circuito aberto após falhas seguidas", g.source.Name())
		}
		return nil, err
	}

	rows, _ := result.([]domain.RawRecord)
	return rows, nil
}

// State informa o estado do disjuntor: closed, half-open ou open
func (g *GuardedSource) State() string {
	return g.breaker.State().String()
}

// Unwrap retorna a origem protegida
func (g *GuardedSource) Unwrap() Source {
	return g.source
}
