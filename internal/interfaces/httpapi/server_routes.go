package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Root)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
}

func registerGolfBagPageRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /golfbags", handler.ListGolfBags)
	mux.HandleFunc("GET /golfbags/new", handler.NewGolfBag)
	mux.HandleFunc("GET /golfbags/{id}", handler.ShowGolfBag)
	mux.HandleFunc("GET /golfbags/{id}/edit", handler.EditGolfBag)
	mux.HandleFunc("POST /golfbags", handler.CreateGolfBag)
	mux.HandleFunc("POST /golfbags/{id}", handler.UpdateGolfBag)
	// Serves both POST /golfbags/delete/{id} and POST /golfbags/{id}/clubs;
	// registered separately the two patterns overlap and the mux panics.
	mux.HandleFunc("POST /golfbags/{first}/{second}", handler.PostGolfBagAction)
}

func registerGolfBagAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/golfbags", handler.ListGolfBagsAPI)
	mux.HandleFunc("GET /api/v1/golfbags/{id}", handler.GetGolfBagAPI)
	mux.HandleFunc("POST /api/v1/golfbags", handler.CreateGolfBagAPI)
	mux.HandleFunc("PUT /api/v1/golfbags/{id}", handler.UpdateGolfBagAPI)
	mux.HandleFunc("DELETE /api/v1/golfbags/{id}", handler.DeleteGolfBagAPI)
}
