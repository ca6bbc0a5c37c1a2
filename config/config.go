package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		UploadLimitMB int    `default:"16" env:"APP_UPLOAD_LIMIT_MB"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
		SwaggerFile   string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"mock-interview" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"interview-audio" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	AI struct {
		// yandex | gemini, пусто - генерация через LLM отключена
		Provider  string `default:"gemini" env:"AI_PROVIDER"`
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		}
		Gemini struct {
			APIKey string `default:"" env:"GOOGLE_API_KEY"`
			Model  string `default:"gemini-1.5-flash-latest" env:"GEMINI_MODEL"`
		}
	}
	TTS struct {
		Enabled *bool  `default:"true" env:"TTS_ENABLED"`
		APIKey  string `default:"" env:"OPENAI_API_KEY"`
		Model   string `default:"tts-1" env:"TTS_MODEL"`
		Voice   string `default:"nova" env:"TTS_VOICE"`
	}
	Interview struct {
		QuestionsCount       int    `default:"10" env:"INTERVIEW_QUESTIONS_COUNT"`
		KeepGreetingResponse *bool  `default:"false" env:"INTERVIEW_KEEP_GREETING_RESPONSE"`
		SessionTTLHours      int    `default:"24" env:"INTERVIEW_SESSION_TTL_HOURS"`
		LockWaitSec          int    `default:"5" env:"INTERVIEW_LOCK_WAIT_SEC"`
		CookieName           string `default:"interview_session" env:"INTERVIEW_COOKIE_NAME"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("файл .env не загружен")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
