package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/dwsetiawan/facility-auth/docs" // swagger spec registration
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", h.Health)

	router.HandleFunc("POST /api/register", h.Register)
	router.HandleFunc("POST /api/login", h.Login)
	router.HandleFunc("POST /api/logout", h.Logout)
	router.HandleFunc("GET /api/get_user", h.GetUser)
	router.HandleFunc("POST /api/get_user", h.GetUser)

	router.HandleFunc("/api/swagger/", httpSwagger.WrapHandler)

	handler := use(router, mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	return handler
}

func use(handler http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return handler
}
