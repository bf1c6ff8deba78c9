package config

const (
	defaultStateDir             = "~/.local/share/strmsync"
	defaultMoviesDir            = "~/library/movies"
	defaultSeriesDir            = "~/library/series"
	defaultLiveTVDir            = "~/library/livetv"
	defaultSourceTimeoutSeconds = 60
	defaultEmbyTimeoutSeconds   = 10
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			TimeoutSeconds: defaultSourceTimeoutSeconds,
		},
		Library: Library{
			MoviesDir: defaultMoviesDir,
			SeriesDir: defaultSeriesDir,
			LiveTVDir: defaultLiveTVDir,
		},
		Emby: Emby{
			TimeoutSeconds: defaultEmbyTimeoutSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		State: State{
			Dir: defaultStateDir,
		},
	}
}
