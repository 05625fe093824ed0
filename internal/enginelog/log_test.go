package enginelog

import "testing"

func TestGetLogReturnsUsableLogger(t *testing.T) {
	log := GetLog("chesscore.test")
	if log == nil {
		t.Fatal("GetLog returned nil")
	}
	log.Debug("smoke test log line")
}
