package logger

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime console flags. The zero value matches a new
// Logger: trace hidden, console enabled.
type Config struct {
	// ShowTraceInConsole writes Trace messages to the console as well as the file.
	// Default: false
	ShowTraceInConsole bool
	// DisableConsole stops all console output. The file still gets every line.
	// Default: false
	DisableConsole bool
}

// ConfigFromEnv reads LOGGER_SHOW_TRACE and LOGGER_NO_CONSOLE. Unset or
// unparseable values keep the defaults.
func ConfigFromEnv() Config {
	var cfg Config
	if v, ok := envBool("LOGGER_SHOW_TRACE"); ok {
		cfg.ShowTraceInConsole = v
	}
	if v, ok := envBool("LOGGER_NO_CONSOLE"); ok {
		cfg.DisableConsole = v
	}
	return cfg
}

func envBool(key string) (bool, bool) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return false, false
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, false
	}
	return v, true
}
