package config

const (
	defaultAPIURL    = "https://api.inmoviebox.com"
	defaultUserAgent = "com.community.mbox.in/50020042 (Linux; U; Android 16; en_IN; " +
		"sdk_gphone64_x86_64; Build/BP22.250325.006; Cronet/133.0.6876.3)"
	defaultClientInfo = `{"package_name":"com.community.mbox.in","version_name":` +
		`"3.0.03.0529.03","version_code":50020042,"os":"android",` +
		`"os_version":"16","device_id":"da2b99c821e6ea023e4be55b54d5f7d8",` +
		`"install_store":"ps","gaid":"d7578036d13336cc","brand":"google",` +
		`"model":"sdk_gphone64_x86_64","system_language":"en","net":"NETWORK_WIFI",` +
		`"region":"IN","timezone":"Asia/Calcutta","sp_code":""}`

	// The signing keys are stored base64 encoded; the HMAC key is the
	// decoded byte sequence.
	defaultSecretKey    = "76iRl07s0xSN9jqmEWAt79EBJZulIQIsV64FZr2O"
	defaultSecretKeyAlt = "Xqn2nnO41/L92o1iuXhSLHTbXvY4Z5ZZ62m8mSLA"

	defaultRequestTimeout = 30

	defaultTMDBAPIKey   = "1865f43a0549ca50d341dd9ab8b29f49"
	defaultTMDBBaseURL  = "https://api.themoviedb.org/3"
	defaultTMDBImageURL = "https://image.tmdb.org/t/p/w500"
	defaultTMDBLanguage = "en"

	defaultCinemetaBaseURL = "https://v3-cinemeta.strem.io"

	defaultMinConfidence = 40
	defaultEarlyExit     = 45

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		MovieBox: MovieBox{
			APIURL:         defaultAPIURL,
			UserAgent:      defaultUserAgent,
			ClientInfo:     defaultClientInfo,
			SecretKey:      defaultSecretKey,
			SecretKeyAlt:   defaultSecretKeyAlt,
			RequestTimeout: defaultRequestTimeout,
		},
		TMDB: TMDB{
			APIKey:         defaultTMDBAPIKey,
			BaseURL:        defaultTMDBBaseURL,
			ImageBaseURL:   defaultTMDBImageURL,
			Language:       defaultTMDBLanguage,
			RequestTimeout: defaultRequestTimeout,
		},
		Cinemeta: Cinemeta{
			BaseURL:        defaultCinemetaBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Identify: Identify{
			MinConfidence: defaultMinConfidence,
			EarlyExit:     defaultEarlyExit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
