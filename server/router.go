package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SearchHandler is the handler surface the router binds routes to.
type SearchHandler interface {
	GetMatches(w http.ResponseWriter, r *http.Request)
	GetBudgetTiers(w http.ResponseWriter, r *http.Request)
	GetCategories(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	searchHandler SearchHandler
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	searchHandler SearchHandler,
	router *mux.Router) *Router {
	return &Router{
		searchHandler: searchHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects repeated ?lat=&lon=&radius= triples plus optional
	// categories, budget, at/from/to, exclude and verbose args
	r.router.HandleFunc("/v1/outings/search", r.searchHandler.GetMatches).Methods("GET")

	r.router.HandleFunc("/v1/outings/budget-tiers", r.searchHandler.GetBudgetTiers).Methods("GET")
	r.router.HandleFunc("/v1/outings/categories", r.searchHandler.GetCategories).Methods("GET")

	r.router.HandleFunc("/ping", r.searchHandler.Ping).Methods("GET")
}
