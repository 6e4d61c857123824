package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/viniciusgf/loja-manager-api/infrastructure/database/postgres"
	"github.com/viniciusgf/loja-manager-api/infrastructure/repository"
	"github.com/viniciusgf/loja-manager-api/internal/api"
	"github.com/viniciusgf/loja-manager-api/internal/config"
	"github.com/viniciusgf/loja-manager-api/internal/scheduler"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	readers := refreshing.Readers{
		Sales:      repository.NewSaleRepository(pgConn),
		SaleItems:  repository.NewSaleItemRepository(pgConn),
		Products:   repository.NewProductRepository(pgConn),
		Clients:    repository.NewClientRepository(pgConn),
		Promotions: repository.NewPromotionRepository(pgConn),
		Categories: repository.NewCategoryRepository(pgConn),
	}

	refreshService := refreshing.NewService(cfg, readers)

	// Agendador que mantém o snapshot padrão aquecido em background
	snapshotRefreshService := scheduler.NewSnapshotRefreshService(refreshService, cfg)

	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de refresh do dashboard")
	} else {
		logrus.Info("Agendador de refresh do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, refreshService, snapshotRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
