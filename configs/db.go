package configs

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

type DB struct {
	Driver        string `env:"DB_DRIVER" envDefault:"postgres"`
	URL           string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH"`
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`
}
