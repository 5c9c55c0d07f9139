package dotenv

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переданные файлы (по умолчанию .env).
// Уже заданные переменные окружения не перезаписываются.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// ApplyPortFlag разбирает -port и переопределяет им PORT.
func ApplyPortFlag(args []string) error {
	var portFlag string
	fs := flag.NewFlagSet("dispatch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
