package configs

type Sync struct {
	Schedule string `env:"DISPLAY_SYNC_SCHEDULE" envDefault:"*/15 * * * *"`
}
