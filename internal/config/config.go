package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/dominicf2001/comfyboard/internal/database"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	TemplateDir string
	StaticDir   string
	Locale      string
	Dev         bool
}

// Load reads an optional .env file, then the BOARD_* environment variables.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("godotenv: %v", err)
	}

	return Config{
		Addr:        getEnv("BOARD_ADDR", "127.0.0.1:8081"),
		TemplateDir: getEnv("BOARD_TEMPLATE_DIR", "web/static"),
		StaticDir:   getEnv("BOARD_STATIC_DIR", "web/static"),
		Locale:      getEnv("BOARD_LOCALE", "ko"),
		Dev:         getEnvBool("BOARD_DEV", true),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("ignoring %s=%q, not a bool", k, v)
	}
	return def
}

// Strings are the user-facing defaults for one locale.
type Strings struct {
	Defaults     database.Defaults
	PostNotFound string
}

func (c Config) Strings() Strings {
	if c.Locale == "en" {
		return Strings{
			Defaults:     database.EnglishDefaults,
			PostNotFound: "post not found",
		}
	}
	return Strings{
		Defaults:     database.KoreanDefaults,
		PostNotFound: "게시글을 찾을 수 없습니다.",
	}
}
