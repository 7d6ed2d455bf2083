package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adpulse/campaign-reporting-api/infrastructure/repository"
	"github.com/adpulse/campaign-reporting-api/internal/config"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
)

// BrandConnectionSyncConfig representa a configuração da varredura de
// conexões de marca
type BrandConnectionSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// BrandConnectionSyncService marca como expiradas as conexões de marca cujo
// token de acesso passou da validade, para que as requisições de relatório
// falhem com erro de configuração em vez de erro de upstream.
type BrandConnectionSyncService struct {
	scheduler         *gocron.Scheduler
	config            BrandConnectionSyncConfig
	brandRepo         repository.BrandConnectionRepository
	syncRunning       bool
	syncMutex         sync.Mutex
	lastSyncStartedAt time.Time
}

// NewBrandConnectionSyncService cria uma nova instância do serviço de
// varredura de conexões de marca
func NewBrandConnectionSyncService(
	brandRepo repository.BrandConnectionRepository,
	appConfig *config.Config,
) *BrandConnectionSyncService {
	syncConfig := BrandConnectionSyncConfig{
		CronSchedule: appConfig.BrandSync.CronSchedule,
		SyncEnabled:  appConfig.BrandSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração da varredura de conexões de marca carregada")

	return &BrandConnectionSyncService{
		scheduler: scheduler,
		config:    syncConfig,
		brandRepo: brandRepo,
	}
}

// Start inicia o agendador
func (s *BrandConnectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Varredura de conexões de marca desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando varredura de conexões de marca")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepExpiredConnections()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de conexões de marca: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando varredura de conexões de marca")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepExpiredConnections marca como expiradas as conexões ativas com token
// vencido. Execuções concorrentes são descartadas.
func (s *BrandConnectionSyncService) sweepExpiredConnections() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Varredura de conexões ainda em execução, pulando ciclo")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	connections, err := s.brandRepo.ListExpiring(time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar conexões de marca expirando")
		return
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão de marca com token vencido")
		return
	}

	expired := 0
	for _, conn := range connections {
		if err := s.brandRepo.UpdateStatus(conn.BrandID, domain.BrandConnectionExpired); err != nil {
			logrus.WithError(err).WithField("brand_id", conn.BrandID).
				Error("Erro ao marcar conexão como expirada")
			continue
		}
		expired++
	}

	logrus.WithFields(logrus.Fields{
		"checked": len(connections),
		"expired": expired,
	}).Info("Varredura de conexões de marca concluída")
}
