// Package timeouts defines shared timeout constants used by commands.
package timeouts

import "time"

// TelemetryShutdown limits how long span export may block process exit.
const TelemetryShutdown = 5 * time.Second

// Script caps a single Lua generation script run.
const Script = 30 * time.Second
