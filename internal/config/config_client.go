package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-genius/models"
)

// ClientApp holds client-side chat settings derived from the shared
// structured config.
type ClientApp struct {
	// MaxUploadSize is the PDF size cap in bytes.
	MaxUploadSize int64
	// DefaultMode is the mode the session starts in.
	DefaultMode models.Mode
	// NudgeDelay delays the AI-mode suggestion after a basic-mode reply.
	NudgeDelay time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend endpoint address.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatusInterval defines how often the status poller runs.
	StatusInterval time.Duration
}

// ClientLog contains logging settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.Client()
}

// Client maps the structured config onto [ClientConfig] and validates it.
func (cfg *StructuredConfig) Client() (*ClientConfig, error) {
	mode, err := models.ParseMode(cfg.App.DefaultMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			MaxUploadSize: int64(cfg.App.MaxUploadMB) << 20,
			DefaultMode:   mode,
			NudgeDelay:    cfg.App.NudgeDelay,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{StatusInterval: cfg.Workers.StatusInterval},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}

	return clientCfg, clientCfg.validate()
}
