package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"funding-bot"`
	URL     string `env:"LOKI_URL"`
}
