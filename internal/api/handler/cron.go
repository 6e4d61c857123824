package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/viniciusgf/loja-manager-api/internal/scheduler"
	"github.com/viniciusgf/loja-manager-api/pkg/apiErrors"
)

const (
	CronJobTypeSnapshotRefresh = "snapshot-refresh"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os agendadores acionáveis manualmente pela API
type CronJobServices struct {
	SnapshotRefreshService *scheduler.SnapshotRefreshService
}

// RunCronJob dispara manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshotRefresh, CronJobTypeAll:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de refresh do dashboard não disponível", nil)
				return
			}
			// O refresh continua em background após a resposta; o contexto
			// da requisição não pode cancelá-lo
			services.SnapshotRefreshService.TriggerManualRefresh(context.WithoutCancel(r.Context()))

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido: "+cronType, nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "started", "type": cronType}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta da cron job")
		}
	}
}

// GetCronStatus retorna o status dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotRefreshService != nil {
			status[CronJobTypeSnapshotRefresh] = services.SnapshotRefreshService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status das cron jobs")
		}
	}
}
