package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	TLS_DOMAINS  = ""           // e.g. "example.com,example2.com"
	MYSQL_DSN    = ""           // MySQL will be used if this is set
	SQLITE_FILE  = "gallery.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	MEDIA_DIR    = "media" // Root directory for uploaded files (disk storage)
	SESSION_KEY  = "this is a long key"
	DEBUG_MODE   = true
	// S3 storage is used instead of local disk if S3_BUCKET is set
	S3_BUCKET      = ""
	S3_REGION      = "us-east-1"
	S3_ENDPOINT    = "" // Optional, for S3-compatible services
	S3_AUTH        = "" // "key:secret"
	TMP_DIR        = "/tmp"
	LOG_FILE       = "" // Log to a rotating file instead of stderr if set
	LOG_FILE_SIZE  = 50 // In MB, before rotation
	LOG_FILE_COUNT = 3
)

func init() {
	_ = godotenv.Load()

	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("LOG_FILE", &LOG_FILE)
	readEnvInt("LOG_FILE_SIZE", &LOG_FILE_SIZE)
	readEnvInt("LOG_FILE_COUNT", &LOG_FILE_COUNT)

	setupLogging()
}

func setupLogging() {
	if LOG_FILE != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   LOG_FILE,
			MaxSize:    LOG_FILE_SIZE,
			MaxBackups: LOG_FILE_COUNT,
		})
	}
	if DEBUG_MODE {
		log.SetLevel(log.DebugLevel)
	}
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
