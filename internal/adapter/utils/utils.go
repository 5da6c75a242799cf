package utils

import (
	"net/http"
	"sync"

	_ "github.com/akolanti/StudyAPI/cmd/api/docs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/http-swagger"
)

var once sync.Once
var router *chi.Mux

func GetNewUUID() string {
	return uuid.New().String()
}

type RouterClient struct {
	Router *chi.Mux
}

func GetRouter() RouterClient {
	once.Do(func() {
		router = chi.NewRouter()
	})

	return RouterClient{Router: router}
}

// RegisterOperationalRoutes mounts swagger and prometheus. Call it after the router middleware is in place.
func RegisterOperationalRoutes(r *chi.Mux) {
	InitSwagger(r)
	//register prometheus
	r.Handle("/metrics", promhttp.Handler())
}

func InitSwagger(r *chi.Mux) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}
