package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		App:    App{Timezone: "UTC"},
		Auth:   Auth{Password: "senha", Secret: "segredo-de-teste-com-32-caracteres"},
		Ledger: Ledger{Sources: []string{SourceManualSheet, SourceSeaTable}, SubmissionTarget: SourceSeaTable},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "Configuração válida",
			mutate: func(c *Config) {},
		},
		{
			name:    "Senha compartilhada ausente",
			mutate:  func(c *Config) { c.Auth.Password = "" },
			wantErr: "AUTH_PASSWORD",
		},
		{
			name:    "Fuso horário inválido",
			mutate:  func(c *Config) { c.App.Timezone = "Marte/Olympus" },
			wantErr: "fuso horário inválido",
		},
		{
			name:    "Origem desconhecida",
			mutate:  func(c *Config) { c.Ledger.Sources = []string{"ftp"} },
			wantErr: "origem desconhecida",
		},
		{
			name:    "Origem postgres sem banco",
			mutate:  func(c *Config) { c.Ledger.Sources = []string{SourcePostgres} },
			wantErr: "DATABASE_ENABLED",
		},
		{
			name: "Origem postgres com banco",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.Ledger.Sources = []string{SourceSeaTable, SourcePostgres}
				c.Ledger.SubmissionTarget = SourcePostgres
			},
		},
		{
			name:    "Destino postgres sem banco",
			mutate:  func(c *Config) { c.Ledger.SubmissionTarget = SourcePostgres },
			wantErr: "DATABASE_ENABLED",
		},
		{
			name:    "Destino fora das origens lidas",
			mutate:  func(c *Config) { c.Ledger.Sources = []string{SourceManualSheet} },
			wantErr: "precisa estar em LEDGER_SOURCES",
		},
		{
			name: "Destino postgres fora das origens lidas",
			mutate: func(c *Config) {
				c.Database.Enabled = true
				c.Ledger.SubmissionTarget = SourcePostgres
			},
			wantErr: "precisa estar em LEDGER_SOURCES",
		},
		{
			name:    "Segredo do token ausente",
			mutate:  func(c *Config) { c.Auth.Secret = "" },
			wantErr: "AUTH_SECRET",
		},
		{
			name:    "Segredo do token com valor de exemplo",
			mutate:  func(c *Config) { c.Auth.Secret = "your_secret_key" },
			wantErr: "AUTH_SECRET",
		},
		{
			name:    "Segredo do token curto demais",
			mutate:  func(c *Config) { c.Auth.Secret = "abc123" },
			wantErr: "AUTH_SECRET",
		},
		{
			name:    "Destino inválido",
			mutate:  func(c *Config) { c.Ledger.SubmissionTarget = SourceWorkbook },
			wantErr: "destino de envio inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.App.Timezone = "invalido/zona"
	assert.Equal(t, time.Local, cfg.Location())
}
