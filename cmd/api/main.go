package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/api"
	"github.com/vfg2006/radiology-workload-api/internal/app"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/pkg/log"
)

func main() {
	// .env é procurado a partir do diretório deste arquivo
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar os serviços")
	}
	defer services.Close()

	// Primeira leitura das origens antes de aceitar requisições
	snapshot := services.Cache.GetOrRebuild(ctx)
	logrus.WithFields(logrus.Fields{
		"entries":  snapshot.Ledger.Len(),
		"warnings": len(snapshot.Warnings()),
	}).Info("Livro carregado")

	services.StartSchedulers(ctx)

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
