package configs

type App struct {
	Environment       string `env:"ENVIRONMENT,notEmpty"`
	ApprovalThreshold int    `env:"APPROVAL_THRESHOLD" envDefault:"8"`
	BoardChannelID    string `env:"BOARD_CHANNEL_ID,notEmpty"`
	RequestsChannelID string `env:"REQUESTS_CHANNEL_ID,notEmpty"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
