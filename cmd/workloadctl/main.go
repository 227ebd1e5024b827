package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/radiology-workload-api/internal/app"
	"github.com/vfg2006/radiology-workload-api/internal/config"
	"github.com/vfg2006/radiology-workload-api/pkg/log"
)

func main() {
	// A CLI imprime o resultado no stdout; logs só a partir de warn
	log.Configure("warn")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	services, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar os serviços")
	}
	defer services.Close()

	root := newRootCmd(ctx, &cliServices{
		Reporter:  services.Reporter,
		Submitter: services.Submitter,
		Exporter:  services.Exporter,
	})

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		services.Close()
		os.Exit(1)
	}
}
