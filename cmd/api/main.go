package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpulse/campaign-reporting-api/infrastructure/billing"
	"github.com/adpulse/campaign-reporting-api/infrastructure/database/postgres"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta"
	"github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/metaclient"
	"github.com/adpulse/campaign-reporting-api/infrastructure/repository"
	"github.com/adpulse/campaign-reporting-api/internal/api"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/scheduler"
	"github.com/adpulse/campaign-reporting-api/internal/usecases/authenticating"
	"github.com/adpulse/campaign-reporting-api/internal/usecases/reporting"
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

	brandRepo := repository.NewBrandConnectionRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	customerResolver := billing.NewCustomerResolver(cfg)
	eventSink := billing.NewEventSink(cfg)

	reportService := reporting.NewService(brandRepo, metaIntegrator, customerResolver, eventSink, cfg)

	// Inicializa a varredura de conexões de marca com token vencido
	brandSyncService := scheduler.NewBrandConnectionSyncService(brandRepo, cfg)

	if err := brandSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de conexões de marca")
	} else {
		logrus.Info("Varredura de conexões de marca iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		reportService,
		authenticator,
	)
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
