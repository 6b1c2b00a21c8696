package config

import (
	"flag"
	"os"
	"strconv"
)

// Config holds process-level configuration for the client, loaded from
// environment variables with flag overrides, following the donor's
// envOrDefault convention (no third-party flags/config library — see
// DESIGN.md for why).
type Config struct {
	Server       string // DAIDE server host
	Port         int    // DAIDE server port, default 16713
	LogLevel     string
	ReconnectPow string // power name for -r<POW>:<passcode> reconnection
	ReconnectPwd string
	DebugDump    bool // -d: dump a DumbBot debug CSV
}

// Load reads configuration from environment variables, then applies any
// flags parsed from args (typically os.Args[1:]).
func Load(args []string) *Config {
	c := &Config{
		Server:   envOrDefault("DAIDE_SERVER", "localhost"),
		Port:     envOrDefaultInt("DAIDE_PORT", 16713),
		LogLevel: envOrDefault("DAIDE_LOG_LEVEL", "info"),
	}

	fs := flag.NewFlagSet("daideclient", flag.ContinueOnError)
	server := fs.String("s", c.Server, "DAIDE server host")
	ip := fs.String("i", "", "DAIDE server IP (alias for -s)")
	port := fs.Int("p", c.Port, "DAIDE server port")
	logLevel := fs.String("l", c.LogLevel, "log level")
	reconnect := fs.String("r", "", "reconnect as POWER:PASSCODE")
	debug := fs.Bool("d", false, "dump DumbBot debug CSV")
	if err := fs.Parse(args); err != nil {
		return c
	}

	c.Server = *server
	if *ip != "" {
		c.Server = *ip
	}
	c.Port = *port
	c.LogLevel = *logLevel
	c.DebugDump = *debug
	if *reconnect != "" {
		c.ReconnectPow, c.ReconnectPwd = splitReconnect(*reconnect)
	}
	return c
}

func splitReconnect(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
