package envconf

// DBConf selects and configures the database backend. SQLite is the
// default so the server runs without any external services.
type DBConf struct {
	SQLite     bool   `env:"SQLITE,default=true"`
	SQLitePath string `env:"SQLITE_PATH,default=./filterable.db"`

	PostgresHost     string `env:"POSTGRES_HOST,default=postgres"`
	PostgresPort     uint   `env:"POSTGRES_PORT,default=5432"`
	PostgresUser     string `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD,default=postgres"`
	PostgresDB       string `env:"POSTGRES_DB,default=filterable"`
}

type EnvDecoderConf struct {
	Debug          bool   `env:"DEBUG,default=true"`
	ServerPort     uint   `env:"SERVER_PORT,default=10001"`
	FilterConfPath string `env:"FILTER_CONF_PATH"`

	DBConf DBConf
}
