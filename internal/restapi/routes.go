package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the statistics endpoints on the router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.handle(router, "/api/vitals/current-time.json", api.currentTimeHandler)
	api.handle(router, "/api/vitals/summary.json", api.summaryHandler)
	api.handle(router, "/api/vitals/deaths-by-department.json", api.deathsByDepartmentHandler)
	api.handle(router, "/api/vitals/deaths-by-month.json", api.deathsByMonthHandler)
	api.handle(router, "/api/vitals/deaths-by-sex.json", api.deathsBySexHandler)
	api.handle(router, "/api/vitals/age-distribution.json", api.ageDistributionHandler)
	api.handle(router, "/api/vitals/top-causes.json", api.topCausesHandler)
	api.handle(router, "/api/vitals/homicides-by-municipality.json", api.homicidesByMunicipalityHandler)
	api.handle(router, "/api/vitals/lowest-mortality-municipalities.json", api.lowestMortalityMunicipalitiesHandler)
	api.handle(router, "/api/vitals/departments.json", api.departmentsHandler)
	api.handle(router, "/api/vitals/department/:id", api.departmentHandler)
}

func (api *RestAPI) handle(router *httprouter.Router, path string, h handlerFunc) {
	handler := validateAPIKey(api, h)
	if api.rateLimiter != nil {
		handler = api.rateLimiter.Handler(handler)
	}
	router.Handler(http.MethodGet, path, handler)
}

// Handler wraps the routed endpoints with the shared middleware stack.
func (api *RestAPI) Handler(router http.Handler) http.Handler {
	handler := applyGzipMiddleware(router)
	handler = securityHeaders(handler)
	handler = NewMetricsMiddleware()(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)

	return handler
}
