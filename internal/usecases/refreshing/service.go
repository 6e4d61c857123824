// Package refreshing coordena a construção de snapshots do dashboard:
// dispara as buscas de registros em paralelo, espera a barreira de fan-in,
// roda os calculadores e as regras de alerta e publica o snapshot mais
// recente. Um refresh disparado durante outro em andamento nunca deixa o
// resultado velho sobrescrever o mais novo.
package refreshing

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/infrastructure/repository"
	"github.com/viniciusgf/loja-manager-api/internal/config"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/timewindow"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/aggregating"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/alerting"
	"github.com/viniciusgf/loja-manager-api/pkg/log"
)

// ErrStaleResult indica que o snapshot calculado foi superado por um
// refresh mais novo e, por isso, descartado sem publicação.
var ErrStaleResult = errors.New("resultado de refresh descartado por geração mais nova")

// Refresher constrói e publica snapshots do dashboard
type Refresher interface {
	// Refresh monta um snapshot novo para os filtros informados
	Refresh(ctx context.Context, filters domain.DashboardFilters) (*domain.Snapshot, error)
	// Latest retorna o último snapshot publicado, ou nil antes do primeiro refresh
	Latest() *domain.Snapshot
}

// Readers agrupa as fontes de registros consumidas pelo refresh
type Readers struct {
	Sales      repository.SaleReader
	SaleItems  repository.SaleItemReader
	Products   repository.ProductReader
	Clients    repository.ClientReader
	Promotions repository.PromotionReader
	Categories repository.CategoryReader
}

// Service implementa Refresher
type Service struct {
	cfg     *config.Config
	readers Readers

	// generation cresce a cada Refresh; publicações de gerações antigas
	// são descartadas na barreira de publicação
	generation atomic.Uint64

	mu        sync.RWMutex
	latest    *domain.Snapshot
	latestGen uint64

	nowFn func() time.Time
}

// NewService cria o coordenador de refresh do dashboard
func NewService(cfg *config.Config, readers Readers) *Service {
	return &Service{
		cfg:     cfg,
		readers: readers,
		nowFn:   time.Now,
	}
}

// fetchResult carrega as coleções buscadas no fan-out. Campos de coleções
// cuja busca falhou ficam vazios e o erro correspondente preenchido.
type fetchResult struct {
	sales      []domain.SaleRecord
	items      []domain.SaleItemRecord
	products   []domain.ProductRecord
	clients    []domain.ClientRecord
	promotions []domain.PromotionRecord
	categories []domain.CategoryRecord

	salesErr      error
	itemsErr      error
	productsErr   error
	clientsErr    error
	promotionsErr error
	categoriesErr error
}

// Refresh executa o ciclo completo: fan-out das seis buscas, barreira de
// fan-in, calculadores e regras de alerta em paralelo e publicação do
// snapshot. Falha de uma busca degrada apenas os grupos que dependem dela.
func (s *Service) Refresh(ctx context.Context, filters domain.DashboardFilters) (*domain.Snapshot, error) {
	logger := log.ForContext(ctx)
	generation := s.generation.Add(1)
	now := s.nowFn().In(s.cfg.Dashboard.Location())

	logger.WithFields(log.Fields{
		"generation": generation,
		"period":     filters.Period,
		"category":   filters.Category,
	}).Info("Iniciando refresh do dashboard")

	result := s.fetchAll(ctx, filters.Period, now)
	snapshot := s.compute(ctx, result, filters, now)

	if err := s.publish(snapshot, generation); err != nil {
		logger.WithField("generation", generation).Warn("Refresh superado por geração mais nova, resultado descartado")
		return nil, err
	}

	logger.WithFields(log.Fields{
		"generation":  generation,
		"alerts":      len(snapshot.Alerts),
		"diagnostics": len(snapshot.Diagnostics),
	}).Info("Refresh do dashboard publicado")

	return snapshot, nil
}

// Latest retorna o último snapshot publicado sem bloquear um refresh em curso
func (s *Service) Latest() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// fetchSince determina a data mais antiga que as buscas de vendas precisam
// cobrir: o início do mês anterior (para lastMonthTotal e compras do mês
// passado), o início da janela de movimentação de produtos ou o início da
// série diária do período, o que vier primeiro. Em março de anos não
// bissextos a janela de 30 dias começa antes do mês anterior, por isso ela
// entra no mínimo.
func fetchSince(period domain.PeriodFilter, now time.Time) time.Time {
	since := timewindow.StartOfMonth(now, -1)

	movementStart := timewindow.StartOfDay(now).AddDate(0, 0, -(aggregating.NoMovementWindowDays - 1))
	if movementStart.Before(since) {
		since = movementStart
	}

	seriesStart := timewindow.StartOfDay(now).AddDate(0, 0, -(period.Days() - 1))
	if seriesStart.Before(since) {
		since = seriesStart
	}

	return since
}

// fetchAll dispara as seis buscas em paralelo, cada uma com seu próprio
// timeout, e espera todas na barreira. Os erros ficam registrados por
// coleção para o cálculo degradar apenas os grupos afetados.
func (s *Service) fetchAll(ctx context.Context, period domain.PeriodFilter, now time.Time) *fetchResult {
	since := fetchSince(period, now)
	timeout := time.Duration(s.cfg.Dashboard.FetchTimeoutSeconds) * time.Second

	result := &fetchResult{}

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		result.sales, result.salesErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.SaleRecord, error) {
			return s.readers.Sales.ListSalesSince(ctx, since)
		})
	}()

	go func() {
		defer wg.Done()
		result.items, result.itemsErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.SaleItemRecord, error) {
			return s.readers.SaleItems.ListItemsSince(ctx, since)
		})
	}()

	go func() {
		defer wg.Done()
		result.products, result.productsErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.ProductRecord, error) {
			return s.readers.Products.ListProducts(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		result.clients, result.clientsErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.ClientRecord, error) {
			return s.readers.Clients.ListClients(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		result.promotions, result.promotionsErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.PromotionRecord, error) {
			return s.readers.Promotions.ListActivePromotions(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		result.categories, result.categoriesErr = withTimeout(ctx, timeout, func(ctx context.Context) ([]domain.CategoryRecord, error) {
			return s.readers.Categories.ListCategories(ctx)
		})
	}()

	wg.Wait()

	return result
}

// withTimeout executa uma busca com prazo próprio, para que uma coleção
// lenta não segure o refresh inteiro além do limite configurado
func withTimeout[T any](ctx context.Context, timeout time.Duration, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	records, err := fetch(fetchCtx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// compute roda os calculadores e as regras de alerta sobre as coleções
// buscadas. Os calculadores são independentes entre si e rodam em paralelo;
// cada um recebe apenas as coleções de que precisa.
func (s *Service) compute(ctx context.Context, result *fetchResult, filters domain.DashboardFilters, now time.Time) *domain.Snapshot {
	logger := log.ForContext(ctx)

	snapshot := &domain.Snapshot{
		Filters:    filters,
		ComputedAt: now,
	}

	snapshot.Diagnostics = s.collectDiagnostics(result)
	for _, diagnostic := range snapshot.Diagnostics {
		logger.WithField("group", diagnostic.Group).Warn(diagnostic.Message)
	}

	// Recorte de categoria: produtos e itens são filtrados antes dos
	// calculadores de produto e categoria. Os demais grupos não mudam
	// com o filtro de categoria.
	filteredProducts, filteredItems := applyCategoryFilter(result.products, result.items, filters.Category)

	// Pânico de um calculador degrada só o grupo dele; o diagnóstico é
	// anexado sob mutex porque os calculadores rodam em paralelo
	var diagMu sync.Mutex
	recoverToZeroState := func(group domain.MetricGroup) {
		r := recover()
		if r == nil {
			return
		}

		logger.WithField("group", group).Errorf("Calculador falhou e o grupo degradou para o estado zero: %v", r)

		diagMu.Lock()
		defer diagMu.Unlock()
		snapshot.Diagnostics = append(snapshot.Diagnostics, domain.Diagnostic{
			Group:   group,
			Message: fmt.Sprintf("cálculo do grupo falhou: %v", r),
		})
	}

	var wg sync.WaitGroup
	wg.Add(7)

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupSales)
		snapshot.Sales = aggregating.ComputeSalesMetrics(result.sales, s.cfg.Dashboard.MonthlyGoal, now)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupDelivery)
		snapshot.Deliveries = aggregating.ComputeDeliveryMetrics(result.sales, now)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupProduct)
		snapshot.Products = aggregating.ComputeProductMetrics(filteredProducts, filteredItems, result.promotions, now)
		snapshot.LowStockTrend = aggregating.ComputeLowStockTrend(filteredProducts, now)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupClient)
		snapshot.Clients = aggregating.ComputeClientMetrics(result.clients, result.sales, now)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupSales)
		snapshot.DailySales = aggregating.ComputeDailySalesSeries(result.sales, filters.Period, now)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupCategory)
		snapshot.CategoryBreakdown = aggregating.ComputeCategoryBreakdown(filteredItems, result.products, result.categories)
	}()

	go func() {
		defer wg.Done()
		defer recoverToZeroState(domain.MetricGroupAlerts)
		snapshot.Alerts = alerting.Evaluate(result.sales, result.products, now)
	}()

	wg.Wait()

	if snapshot.Alerts == nil {
		snapshot.Alerts = []domain.Alert{}
	}

	return snapshot
}

// collectDiagnostics converte cada falha de busca nos diagnósticos dos
// grupos que dependem daquela coleção. Diagnóstico não é alerta de negócio:
// ele informa que um grupo degradou para o estado zero.
func (s *Service) collectDiagnostics(result *fetchResult) []domain.Diagnostic {
	var diagnostics []domain.Diagnostic

	add := func(err error, collection string, groups ...domain.MetricGroup) {
		if err == nil {
			return
		}
		for _, group := range groups {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Group:   group,
				Message: fmt.Sprintf("falha ao buscar %s: %v", collection, err),
			})
		}
	}

	add(result.salesErr, "vendas",
		domain.MetricGroupSales, domain.MetricGroupDelivery, domain.MetricGroupClient, domain.MetricGroupAlerts)
	add(result.itemsErr, "itens de venda",
		domain.MetricGroupProduct, domain.MetricGroupCategory)
	add(result.productsErr, "produtos",
		domain.MetricGroupProduct, domain.MetricGroupCategory, domain.MetricGroupAlerts)
	add(result.clientsErr, "clientes",
		domain.MetricGroupClient)
	add(result.promotionsErr, "promoções",
		domain.MetricGroupProduct)
	add(result.categoriesErr, "categorias",
		domain.MetricGroupCategory)

	return diagnostics
}

// applyCategoryFilter reduz produtos e itens à categoria selecionada.
// O valor especial "all" (ou vazio) mantém tudo; "uncategorized" seleciona
// produtos sem vínculo de categoria e seus itens.
func applyCategoryFilter(
	products []domain.ProductRecord,
	items []domain.SaleItemRecord,
	category string,
) ([]domain.ProductRecord, []domain.SaleItemRecord) {
	if category == "" || category == domain.CategoryAll {
		return products, items
	}

	matches := func(p domain.ProductRecord) bool {
		if category == domain.CategoryUncategorized {
			return p.CategoryID == nil
		}
		return p.CategoryID != nil && *p.CategoryID == category
	}

	selectedIDs := make(map[string]struct{})
	filteredProducts := make([]domain.ProductRecord, 0, len(products))
	for _, product := range products {
		if matches(product) {
			selectedIDs[product.ID] = struct{}{}
			filteredProducts = append(filteredProducts, product)
		}
	}

	filteredItems := make([]domain.SaleItemRecord, 0, len(items))
	for _, item := range items {
		if _, ok := selectedIDs[item.ProductID]; ok {
			filteredItems = append(filteredItems, item)
		}
	}

	return filteredProducts, filteredItems
}

// publish instala o snapshot como o mais recente, a menos que uma geração
// mais nova já tenha publicado antes
func (s *Service) publish(snapshot *domain.Snapshot, generation uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation < s.latestGen {
		return errors.Wrapf(ErrStaleResult, "geração %d superada pela %d", generation, s.latestGen)
	}

	s.latest = snapshot
	s.latestGen = generation
	return nil
}
