package handler

import (
	"net/http"

	"github.com/viniciusgf/loja-manager-api/internal/api/handler/router"
	"github.com/viniciusgf/loja-manager-api/internal/usecases/refreshing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(refresher refreshing.Refresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(refresher),
		},
		{
			Path:    "/v1/dashboard/latest",
			Method:  http.MethodGet,
			Handler: GetLatestDashboard(refresher),
		},
		{
			Path:    "/v1/dashboard/alerts",
			Method:  http.MethodGet,
			Handler: GetDashboardAlerts(refresher),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
