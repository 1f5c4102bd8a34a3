package utils

import (
	"os"
	"reflect"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSS3Endpoint string `yaml:"AWS_S3_ENDPOINT"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
}

var config Config

// LoadConfig reads config.yaml (or the file named by CONFIG_FILE). Values
// set in the environment win over the file.
func LoadConfig() {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("error reading config file %s: %v", path, err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Errorf("error parsing config file %s: %v", path, err)
		return
	}
}

// GetConfig returns the value for a config.yaml key such as "DB_HOST".
// Unknown keys yield an empty string.
func GetConfig(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return configValues()[key]
}

var (
	valuesOnce sync.Once
	keyIndex   map[string]int
)

// configValues maps every yaml key of Config to its loaded value.
func configValues() map[string]string {
	valuesOnce.Do(func() {
		keyIndex = make(map[string]int)
		t := reflect.TypeOf(Config{})
		for i := 0; i < t.NumField(); i++ {
			if key := t.Field(i).Tag.Get("yaml"); key != "" {
				keyIndex[key] = i
			}
		}
	})

	v := reflect.ValueOf(config)
	values := make(map[string]string, len(keyIndex))
	for key, i := range keyIndex {
		values[key] = v.Field(i).String()
	}
	return values
}
