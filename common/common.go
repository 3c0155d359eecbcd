package common

import (
	"os"
	"os/signal"
	"syscall"
)

func SignalHandler() chan os.Signal {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	return sigs
}
