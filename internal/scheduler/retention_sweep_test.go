package scheduler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRetentionSweepService_Sweep(t *testing.T) {
	t.Run("Métricas e relatórios antigos removidos, artefatos apagados do disco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
		mockReportRepo := mocks.NewMockReportRepository(ctrl)

		artifactPath := filepath.Join(t.TempDir(), "report_ACC001.html")
		assert.NoError(t, os.WriteFile(artifactPath, []byte("<html></html>"), 0o644))

		orphanPath := filepath.Join(t.TempDir(), "inexistente.html")

		mockMetricsRepo.EXPECT().DeleteOlderThan(90).Return(int64(42), nil)

		mockReportRepo.EXPECT().ListOlderThan(180).Return([]*domain.ReportRecord{
			{ID: "REP001", ArtifactPath: &artifactPath},
			{ID: "REP002", ArtifactPath: &orphanPath},
			{ID: "REP003"},
		}, nil)
		mockReportRepo.EXPECT().DeleteOlderThan(180).Return(int64(3), nil)

		service := &RetentionSweepService{
			config: RetentionSweepConfig{
				MetricsRetentionDays: 90,
				ReportsRetentionDays: 180,
				SyncEnabled:          true,
			},
			metricsRepo: mockMetricsRepo,
			reportRepo:  mockReportRepo,
		}

		service.sweep()

		assert.Equal(t, int64(42), service.lastMetricsRemoved)
		assert.Equal(t, int64(3), service.lastReportsRemoved)
		assert.NoFileExists(t, artifactPath)
	})

	t.Run("Falha ao listar relatórios antigos preserva os registros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
		mockReportRepo := mocks.NewMockReportRepository(ctrl)

		mockMetricsRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
		mockReportRepo.EXPECT().ListOlderThan(180).Return(nil, errors.New("banco indisponível"))

		service := &RetentionSweepService{
			config: RetentionSweepConfig{
				MetricsRetentionDays: 90,
				ReportsRetentionDays: 180,
				SyncEnabled:          true,
			},
			metricsRepo: mockMetricsRepo,
			reportRepo:  mockReportRepo,
		}

		service.sweep()

		assert.Equal(t, int64(0), service.lastReportsRemoved)
	})

	t.Run("Falha na remoção de métricas não interrompe a varredura de relatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
		mockReportRepo := mocks.NewMockReportRepository(ctrl)

		mockMetricsRepo.EXPECT().DeleteOlderThan(90).Return(int64(0), errors.New("banco indisponível"))
		mockReportRepo.EXPECT().ListOlderThan(180).Return([]*domain.ReportRecord{}, nil)
		mockReportRepo.EXPECT().DeleteOlderThan(180).Return(int64(0), nil)

		service := &RetentionSweepService{
			config: RetentionSweepConfig{
				MetricsRetentionDays: 90,
				ReportsRetentionDays: 180,
				SyncEnabled:          true,
			},
			metricsRepo: mockMetricsRepo,
			reportRepo:  mockReportRepo,
		}

		service.sweep()

		assert.Equal(t, int64(0), service.lastMetricsRemoved)
	})
}
