package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	statssvc "github.com/angelmondragon/dashboard-backend/internal/stats"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

// AdminStatsSummary returns the dashboard totals.
func AdminStatsSummary(svc statssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "stats") {
			return
		}
		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// AdminStatsCategories returns product counts and stock per category.
func AdminStatsCategories(svc statssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "stats") {
			return
		}
		categories, err := svc.Categories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

// AdminStatsOrders returns order counts and totals per status.
func AdminStatsOrders(svc statssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "stats") {
			return
		}
		statuses, err := svc.OrderStatuses(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, statuses)
	}
}
