package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/viniciusgf/loja-manager-api/internal/config"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, enabled bool) (*SnapshotRefreshService, *mocks.MockRefresher, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl)

	cfg := &config.Config{}
	cfg.SnapshotRefresh.CronSchedule = "*/5 * * * *"
	cfg.SnapshotRefresh.Enabled = enabled

	return NewSnapshotRefreshService(refresher, cfg), refresher, ctrl
}

func TestSnapshotRefreshService_RefreshDefaultSnapshot(t *testing.T) {
	service, refresher, ctrl := newTestService(t, true)
	defer ctrl.Finish()

	refresher.EXPECT().
		Refresh(gomock.Any(), domain.DashboardFilters{
			Period:   domain.PeriodMonth,
			Category: domain.CategoryAll,
		}).
		Return(&domain.Snapshot{ComputedAt: time.Now()}, nil)

	err := service.RefreshDefaultSnapshot(context.Background())

	assert.NoError(t, err)

	status := service.GetStatus()
	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, false, status["refresh_running"])
	assert.NotZero(t, status["last_refresh_started_at"])
	assert.NotZero(t, status["last_refresh_completed_at"])
}

func TestSnapshotRefreshService_GeracaoSuperadaNaoVirarErro(t *testing.T) {
	service, refresher, ctrl := newTestService(t, true)
	defer ctrl.Finish()

	refresher.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(refreshing.ErrStaleResult, "geração 1 superada pela 2"))

	err := service.RefreshDefaultSnapshot(context.Background())

	assert.NoError(t, err)
}

func TestSnapshotRefreshService_FalhaDeRefreshPropagaErro(t *testing.T) {
	service, refresher, ctrl := newTestService(t, true)
	defer ctrl.Finish()

	refresher.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := service.RefreshDefaultSnapshot(context.Background())

	assert.Error(t, err)
}

func TestSnapshotRefreshService_ExecucaoSobrepostaEhIgnorada(t *testing.T) {
	service, refresher, ctrl := newTestService(t, true)
	defer ctrl.Finish()

	block := make(chan struct{})
	started := make(chan struct{})

	refresher.EXPECT().
		Refresh(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, filters domain.DashboardFilters) (*domain.Snapshot, error) {
			close(started)
			<-block
			return &domain.Snapshot{}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.RefreshDefaultSnapshot(context.Background()))
	}()

	<-started

	// Segunda chamada enquanto a primeira roda: não dispara novo Refresh
	assert.NoError(t, service.RefreshDefaultSnapshot(context.Background()))

	close(block)
	wg.Wait()
}

func TestSnapshotRefreshService_StartDesabilitadoNaoAgenda(t *testing.T) {
	service, _, ctrl := newTestService(t, false)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, service.Start(ctx))
}
