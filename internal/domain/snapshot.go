package domain

import (
	"fmt"
	"time"
)

// PeriodFilter define o recorte temporal ativo do dashboard
type PeriodFilter string

const (
	PeriodToday PeriodFilter = "today"
	PeriodWeek  PeriodFilter = "week"
	PeriodMonth PeriodFilter = "month"
	PeriodYear  PeriodFilter = "year"
)

// ParsePeriodFilter valida um filtro de período vindo da UI.
// Valor vazio assume o mês corrente.
func ParsePeriodFilter(raw string) (PeriodFilter, error) {
	switch PeriodFilter(raw) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodYear:
		return PeriodFilter(raw), nil
	case "":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("filtro de período inválido: %q", raw)
	}
}

// Days retorna o número de dias cobertos pela série diária do período
func (p PeriodFilter) Days() int {
	switch p {
	case PeriodToday:
		return 1
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// CategoryAll e CategoryUncategorized são os valores especiais do filtro de categoria
const (
	CategoryAll           = "all"
	CategoryUncategorized = "uncategorized"
)

// DashboardFilters agrupa os filtros ativos de um refresh
type DashboardFilters struct {
	Period   PeriodFilter `json:"period"`
	Category string       `json:"category"`
}

// MetricGroup identifica um grupo de métricas do snapshot para diagnósticos
type MetricGroup string

const (
	MetricGroupSales    MetricGroup = "sales"
	MetricGroupDelivery MetricGroup = "delivery"
	MetricGroupProduct  MetricGroup = "product"
	MetricGroupClient   MetricGroup = "client"
	MetricGroupCategory MetricGroup = "category"
	MetricGroupAlerts   MetricGroup = "alerts"
)

// Diagnostic registra uma falha de busca ou de cálculo que degradou um
// grupo de métricas para o estado zero. Não é um alerta de negócio.
type Diagnostic struct {
	Group   MetricGroup `json:"group"`
	Message string      `json:"message"`
}

// Snapshot é o conjunto completo e imutável de métricas do dashboard,
// construído do zero a cada refresh e nunca persistido
type Snapshot struct {
	Sales             SalesMetrics           `json:"sales"`
	Deliveries        DeliveryMetrics        `json:"deliveries"`
	Products          ProductMetrics         `json:"products"`
	Clients           ClientMetrics          `json:"clients"`
	DailySales        DailySalesSeries       `json:"daily_sales"`
	CategoryBreakdown CategorySalesBreakdown `json:"category_breakdown"`
	LowStockTrend     LowStockTrend          `json:"low_stock_trend"`
	Alerts            []Alert                `json:"alerts"`
	Diagnostics       []Diagnostic           `json:"diagnostics,omitempty"`
	Filters           DashboardFilters       `json:"filters"`
	ComputedAt        time.Time              `json:"computed_at"`
}

// AllClear indica o estado "tudo certo": nenhuma regra de alerta disparada
func (s *Snapshot) AllClear() bool {
	return len(s.Alerts) == 0
}

// PeriodLabel devolve o rótulo humano do filtro de período, usado pelo
// exportador de relatórios e pelo cabeçalho do dashboard
func PeriodLabel(period PeriodFilter) string {
	switch period {
	case PeriodToday:
		return "Hoje"
	case PeriodWeek:
		return "Últimos 7 dias"
	case PeriodYear:
		return "Este ano"
	default:
		return "Este mês"
	}
}

// LastUpdatedLabel devolve o texto de "última atualização" do snapshot
func (s *Snapshot) LastUpdatedLabel() string {
	return fmt.Sprintf("Atualizado em %s", s.ComputedAt.Format("02/01/2006 15:04"))
}
