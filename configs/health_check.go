package configs

type HealthCheck struct {
	Address string `env:"HEALTH_CHECK_ADDRESS" envDefault:":8080"`
	Path    string `env:"HEALTH_CHECK_PATH" envDefault:"/funding-bot/healthcheck"`
}
