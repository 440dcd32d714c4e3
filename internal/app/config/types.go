package config

type (
	DriverConfig struct {
		Redis    Redis
		MongoDB  MongoDB
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}
	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env              string
		Port             string
		Version          string
		Address          string
		Timezone         string
		EndpointPrefix   string
		ResetPasswordUrl string
		// SnapshotBackend selects where the record store persists: redis or mongo.
		SnapshotBackend                    string
		RabbitMQMailerQueue                string
		MaxRequests                        int
		ShutdownTimeout                    int
		MaxTimeRequestsPerSeconds          int
		RequestBodyLimitInMegabyte         int
		ForgotPasswordTokenExpTimeInMinute int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
