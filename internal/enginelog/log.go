// Package enginelog wires internal/search's diagnostics to
// github.com/op/go-logging: one leveled backend to stderr, constructed
// once per named logger. Grounded on FrankyGo's franky_logging.GetLog.
package enginelog

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:7s}: %{message}`,
)

// GetLog returns a named logger backed by a single leveled stderr
// backend at DEBUG. Every caller shares the same backend, so a root
// search log line and its workers' DEBUG detail interleave on one
// stream in timestamp order.
func GetLog(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(logging.DEBUG, "")
	logging.SetBackend(leveled)
	return log
}
