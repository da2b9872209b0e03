// Package config holds the runtime configuration shared between the server
// and client entry points: small, serialization-friendly structs with no
// behavior of their own.
package config

import "time"

// ServerConfig is the server binary's resolved CLI flags.
type ServerConfig struct {
	Port         int // 0 lets the kernel choose
	Timeout      time.Duration
	ScriptPath   string
	LogLevel     string
	Verbose      bool
	PendingSlots int
}

// ClientConfig is the client binary's resolved CLI flags.
type ClientConfig struct {
	Host      string
	Port      int
	Family    string // "", "4", or "6"
	Seat      byte   // 'N', 'E', 'S', or 'W'
	Automatic bool
	LogLevel  string
	Verbose   bool
}
