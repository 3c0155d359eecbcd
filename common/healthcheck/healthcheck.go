package healthcheck

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/herdarena/herdarena/common/utils"
)

type HealthCheckHandler func() (ok bool, err error)

type HealthCheck struct {
	Name    string
	Handler HealthCheckHandler
}

type HealthCheckServer struct {
	Checkers []HealthCheck
	port     int
	srv      *http.Server
}

type HealthChecks struct {
	Status bool
	Name   string
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks
	StatusCode int
}

func NewHealthCheckServer(port int) *HealthCheckServer {
	return &HealthCheckServer{
		port: port,
	}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.Checkers = append(server.Checkers, HealthCheck{
		Name:    name,
		Handler: handler,
	})
}

func (server *HealthCheckServer) httpHandler(w http.ResponseWriter, r *http.Request) {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0),
		StatusCode: 200,
	}

	for _, checker := range server.Checkers {
		checkerRes, err := checker.Handler()

		if err != nil || !checkerRes {
			res.StatusCode = http.StatusInternalServerError
			checkerRes = false
		}

		res.Checks = append(res.Checks, HealthChecks{
			Name:   checker.Name,
			Status: checkerRes,
		})
	}

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}

func (server *HealthCheckServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", server.httpHandler)

	server.srv = &http.Server{
		Addr:    ":" + strconv.Itoa(server.port),
		Handler: mux,
	}

	go func() {
		err := server.srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			utils.Check(err, "Failed to listen on :"+strconv.Itoa(server.port))
		}
	}()

	utils.Debug("healthcheck", "Listening on :"+strconv.Itoa(server.port))
}

func (server *HealthCheckServer) Stop() {
	if server.srv != nil {
		server.srv.Close()
	}
}
