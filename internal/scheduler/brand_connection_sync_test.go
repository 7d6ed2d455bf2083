package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	gomock "go.uber.org/mock/gomock"

	repomocks "github.com/adpulse/campaign-reporting-api/infrastructure/repository/mocks"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
)

func newTestSyncService(t *testing.T) (*BrandConnectionSyncService, *repomocks.MockBrandConnectionRepository) {
	ctrl := gomock.NewController(t)
	brandRepo := repomocks.NewMockBrandConnectionRepository(ctrl)

	service := &BrandConnectionSyncService{
		config:    BrandConnectionSyncConfig{CronSchedule: "0 2 * * *", SyncEnabled: true},
		brandRepo: brandRepo,
	}

	return service, brandRepo
}

func TestSweepExpiredConnections(t *testing.T) {
	t.Run("marca todas as conexões vencidas", func(t *testing.T) {
		service, brandRepo := newTestSyncService(t)

		brandRepo.EXPECT().ListExpiring(gomock.Any()).Return([]*domain.BrandConnection{
			{BrandID: "brand-1", Status: domain.BrandConnectionActive},
			{BrandID: "brand-2", Status: domain.BrandConnectionActive},
		}, nil)

		brandRepo.EXPECT().UpdateStatus("brand-1", domain.BrandConnectionExpired).Return(nil)
		brandRepo.EXPECT().UpdateStatus("brand-2", domain.BrandConnectionExpired).Return(nil)

		service.sweepExpiredConnections()
	})

	t.Run("falha em uma conexão não interrompe as demais", func(t *testing.T) {
		service, brandRepo := newTestSyncService(t)

		brandRepo.EXPECT().ListExpiring(gomock.Any()).Return([]*domain.BrandConnection{
			{BrandID: "brand-1"},
			{BrandID: "brand-2"},
		}, nil)

		brandRepo.EXPECT().UpdateStatus("brand-1", domain.BrandConnectionExpired).
			Return(errors.New("deadlock detectado"))
		brandRepo.EXPECT().UpdateStatus("brand-2", domain.BrandConnectionExpired).Return(nil)

		service.sweepExpiredConnections()
	})

	t.Run("nenhuma conexão vencida não atualiza nada", func(t *testing.T) {
		service, brandRepo := newTestSyncService(t)

		brandRepo.EXPECT().ListExpiring(gomock.Any()).Return([]*domain.BrandConnection{}, nil)

		service.sweepExpiredConnections()
	})

	t.Run("falha na listagem encerra a varredura", func(t *testing.T) {
		service, brandRepo := newTestSyncService(t)

		brandRepo.EXPECT().ListExpiring(gomock.Any()).Return(nil, errors.New("timeout"))

		service.sweepExpiredConnections()
	})

	t.Run("execução concorrente é descartada", func(t *testing.T) {
		service, brandRepo := newTestSyncService(t)

		service.syncMutex.Lock()
		service.syncRunning = true
		service.syncMutex.Unlock()

		// Nenhuma expectativa no repositório: o ciclo é pulado
		service.sweepExpiredConnections()
		_ = brandRepo
	})
}
