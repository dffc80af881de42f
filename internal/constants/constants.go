package constants

import "time"

var ServerTimeouts = struct {
	Read     time.Duration
	Write    time.Duration
	Shutdown time.Duration
}{
	Read:     15 * time.Second,
	Write:    15 * time.Second,
	Shutdown: 10 * time.Second,
}

var DatabaseProbe = struct {
	PingTimeout  time.Duration
	MaxTables    int
	MaxDetailLen int
}{
	PingTimeout:  5 * time.Second,
	MaxTables:    10,
	MaxDetailLen: 50,
}

// Status markers rendered by the diagnostic endpoint.
var Markers = struct {
	BackendRunning     string
	DBNotAvailable     string
	DBNotInitialized   string
	DBConnectedWorking string
	DBConnectedError   string // prefix, detail appended
	EnvSet             string
	EnvNotSet          string
}{
	BackendRunning:     "✅ Running",
	DBNotAvailable:     "❌ Not Available",
	DBNotInitialized:   "⚠️  Available but not initialized",
	DBConnectedWorking: "✅ Connected & Working",
	DBConnectedError:   "⚠️  Connected but Error: ",
	EnvSet:             "✅ Set",
	EnvNotSet:          "❌ Not Set",
}
