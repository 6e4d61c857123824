package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/viniciusgf/loja-manager-api/internal/domain"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing"
	"github.com/viniciusgf/loja-manager-api/pkg/apiErrors"
	"github.com/viniciusgf/loja-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dashboardResponse embrulha o snapshot com os rótulos prontos para a UI
// e para o exportador de relatórios
type dashboardResponse struct {
	*domain.Snapshot
	Meta dashboardMeta `json:"meta"`
}

type dashboardMeta struct {
	PeriodLabel string `json:"period_label"`
	LastUpdated string `json:"last_updated"`
	AllClear    bool   `json:"all_clear"`
}

// GetDashboard monta um snapshot novo para os filtros da query string.
// Cada chamada recalcula tudo do zero: snapshot não tem identidade além
// do seu timestamp.
func GetDashboard(refresher refreshing.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		period, err := domain.ParsePeriodFilter(r.URL.Query().Get("period"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		category := r.URL.Query().Get("category")
		if category == "" {
			category = domain.CategoryAll
		}

		filters := domain.DashboardFilters{Period: period, Category: category}

		snapshot, err := refresher.Refresh(r.Context(), filters)
		if err != nil {
			if errors.Is(err, refreshing.ErrStaleResult) {
				apiErrors.WriteError(w, apiErrors.ErrStaleRefresh, "Um refresh mais novo superou esta requisição", nil)
				return
			}

			logger.WithError(err).Error("Erro ao montar o snapshot do dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		writeDashboard(w, logger, snapshot)
	}
}

// GetLatestDashboard devolve o último snapshot publicado sem recalcular,
// usado pela UI para pintar a primeira tela antes do refresh completo
func GetLatestDashboard(refresher refreshing.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := refresher.Latest()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrQueryFailure, "Nenhum snapshot publicado ainda", nil)
			return
		}

		writeDashboard(w, logger, snapshot)
	}
}

// alertsResponse carrega só o feed de alertas, para o sino da UI que
// consulta com mais frequência do que o dashboard inteiro
type alertsResponse struct {
	Alerts      []domain.Alert `json:"alerts"`
	AllClear    bool           `json:"all_clear"`
	LastUpdated string         `json:"last_updated"`
}

// GetDashboardAlerts devolve o feed de alertas do último snapshot publicado
func GetDashboardAlerts(refresher refreshing.Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot := refresher.Latest()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrQueryFailure, "Nenhum snapshot publicado ainda", nil)
			return
		}

		response := alertsResponse{
			Alerts:      snapshot.Alerts,
			AllClear:    snapshot.AllClear(),
			LastUpdated: snapshot.LastUpdatedLabel(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("Erro ao enviar o feed de alertas")
		}
	}
}

func writeDashboard(w http.ResponseWriter, logger log.Logger, snapshot *domain.Snapshot) {
	response := dashboardResponse{
		Snapshot: snapshot,
		Meta: dashboardMeta{
			PeriodLabel: domain.PeriodLabel(snapshot.Filters.Period),
			LastUpdated: snapshot.LastUpdatedLabel(),
			AllClear:    snapshot.AllClear(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta do dashboard")
	}
}
