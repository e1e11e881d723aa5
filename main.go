package main

import (
	"fmt"
	"os"

	"github.com/tborsa/SMAPI/logfile"
	"github.com/tborsa/SMAPI/logger"
)

// Example host program writing to the console and a log file.
func main() {
	// Usage: ./SMAPI [logfile]
	// Example: LOGGER_SHOW_TRACE=true ./SMAPI ./app.log
	logPath := "smapi.log"
	if len(os.Args) > 1 {
		logPath = os.Args[1]
	}

	file, err := logfile.Open(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	core, err := logger.New("Core", file, logger.WithConfig(logger.ConfigFromEnv()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	core.Info("Started")
	core.Logf(logger.Info, "Logging to file: %s", file.Path())
	core.Trace("trace messages go to the file, and to the console only when enabled")
	core.Debug("loading mods")
	core.Warn("mod 'Example' is outdated")
	core.Error("mod 'Broken' failed to load")
	core.Alert("an update is available")

	mod, err := logger.New("Example Mod", file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	mod.Log("hello from a mod", logger.Info)

	// Uncomment to see the fatal style (leaves the console background red):
	// core.LogFatal("disk full")
	// core.Console().ResetBackground()
}
