package config

const (
	defaultOutputDir           = "~/Music/tunegrab"
	defaultTempDir             = ""
	defaultLogDir              = "~/.local/share/tunegrab/logs"
	defaultYtDlpBinary         = "yt-dlp"
	defaultFetchTimeoutSeconds = 1800
	defaultTitleTimeoutSeconds = 60
	defaultBatchWorkers        = 1
	maxBatchWorkers            = 8
	defaultFilenameMaxLength   = 120
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			TempDir:   defaultTempDir,
			LogDir:    defaultLogDir,
		},
		Tools: Tools{
			YtDlp:               defaultYtDlpBinary,
			FetchTimeoutSeconds: defaultFetchTimeoutSeconds,
			TitleTimeoutSeconds: defaultTitleTimeoutSeconds,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
		Output: Output{
			FilenameMaxLength: defaultFilenameMaxLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
