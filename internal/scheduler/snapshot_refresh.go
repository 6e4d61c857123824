// Package scheduler contém o agendamento do refresh periódico do dashboard
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/viniciusgf/loja-manager-api/internal/config"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing"
)

type SnapshotRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotRefreshService mantém o snapshot padrão do dashboard aquecido,
// refazendo o cálculo em intervalos regulares para o primeiro acesso do dia
// não pagar o custo do refresh completo.
type SnapshotRefreshService struct {
	scheduler *gocron.Scheduler
	refresher refreshing.Refresher
	config    SnapshotRefreshConfig

	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewSnapshotRefreshService(refresher refreshing.Refresher, cfg *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: cfg.SnapshotRefresh.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.SnapshotRefresh.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(cfg.Dashboard.Location())

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de refresh do dashboard carregada")

	return &SnapshotRefreshService{
		scheduler: scheduler,
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de refresh do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de refresh do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDefaultSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no refresh agendado do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar refresh do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de refresh do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDefaultSnapshot recalcula o snapshot com os filtros padrão (mês
// corrente, todas as categorias). Execuções sobrepostas são ignoradas.
func (s *SnapshotRefreshService) RefreshDefaultSnapshot(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Refresh do dashboard já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando refresh agendado do dashboard")

	_, err := s.refresher.Refresh(ctx, domain.DashboardFilters{
		Period:   domain.PeriodMonth,
		Category: domain.CategoryAll,
	})
	if err != nil {
		// Geração superada não é falha: outro refresh mais novo venceu
		if errors.Is(err, refreshing.ErrStaleResult) {
			logrus.Info("Refresh agendado superado por um refresh mais novo")
			return nil
		}
		return err
	}

	logrus.Info("Refresh agendado do dashboard concluído")
	return nil
}

// TriggerManualRefresh inicia manualmente um refresh do snapshot padrão
func (s *SnapshotRefreshService) TriggerManualRefresh(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Refresh do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando refresh manual do dashboard")
	go func() {
		if err := s.RefreshDefaultSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no refresh manual do dashboard")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
	}
}
