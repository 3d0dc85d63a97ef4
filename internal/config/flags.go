package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client's command-line flags from args.
//
// Flags:
//
//	-a backend address ("host:port" or URL)
//	-request-timeout request timeout (e.g. "30s"; 0 disables)
//	-max-upload-mb PDF size cap in MiB
//	-mode initial chat mode (basic|ai)
//	-nudge-delay delay of the AI-mode suggestion (e.g. "1.5s")
//	-status-interval status polling interval (e.g. "30s")
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("chat-genius", flag.ContinueOnError)

	var (
		address        string
		requestTimeout time.Duration
		maxUploadMB    int
		mode           string
		nudgeDelay     time.Duration
		statusInterval time.Duration
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs.StringVar(&address, "a", "", "Backend address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxUploadMB, "max-upload-mb", 0, "Maximum PDF size in MiB")
	fs.StringVar(&mode, "mode", "", "Initial chat mode: basic or ai")
	fs.DurationVar(&nudgeDelay, "nudge-delay", 0, "Delay of the AI-mode suggestion")
	fs.DurationVar(&statusInterval, "status-interval", 0, "Status polling interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MaxUploadMB: maxUploadMB,
			DefaultMode: mode,
			NudgeDelay:  nudgeDelay,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			StatusInterval: statusInterval,
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
