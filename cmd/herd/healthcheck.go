package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/herdarena/herdarena/common/healthcheck"
	"github.com/herdarena/herdarena/server"
)

func NewHealthCheck(srv *server.Server, vizURL string, port int) *healthcheck.HealthCheckServer {
	healthCheckServer := healthcheck.NewHealthCheckServer(port)

	// The game is healthy as long as the tick sequence moves forward
	// between two probes
	lastseq := srv.GetTurn().GetSeq()
	firstprobe := true

	healthCheckServer.Register("game", func() (bool, error) {
		seq := srv.GetTurn().GetSeq()

		if firstprobe {
			firstprobe = false
			lastseq = seq
			return true, nil
		}

		if seq == lastseq {
			return false, errors.New("Tick sequence stalled at " + strconv.Itoa(int(seq)))
		}

		lastseq = seq

		return true, nil
	})

	healthCheckServer.Register("viz", func() (bool, error) {
		resp, err := http.Get(vizURL)

		if err != nil {
			return false, err
		}

		defer resp.Body.Close()

		if resp.StatusCode != 200 {
			return false, errors.New("HTTP error, status " + strconv.Itoa(resp.StatusCode))
		}

		return true, nil
	})

	return healthCheckServer
}
