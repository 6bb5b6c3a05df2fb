package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultOutput is where the CSV report goes when no path is given.
const DefaultOutput = "voting_results.csv"

type Config struct {
	InputPath      string
	OutputPath     string
	Verbose        bool
	Strict         bool
	Lenient        bool
	IncludeUnvoted bool
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("votetally", flag.ContinueOnError)

	// Paths (can be CLI args or env)
	fs.StringVar(&cfg.InputPath, "i", "", "Input file of voting messages")
	fs.StringVar(&cfg.OutputPath, "o", "", "Output CSV file")
	fs.StringVar(&envFile, "env", "", "Dotenv file to load before reading env variables")

	// Behavior toggles
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")
	fs.BoolVar(&cfg.Strict, "strict", false, "Fail on votes for undeclared topics")
	fs.BoolVar(&cfg.Lenient, "lenient", false, "Skip malformed lines instead of failing")
	fs.BoolVar(&cfg.IncludeUnvoted, "include-unvoted", false, "Emit zero-vote rows for topics nobody voted on")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Load the dotenv file before the env fallbacks below read anything.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	// Fall back to environment variables
	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("INPUT_FILE")
	}
	if cfg.InputPath == "" {
		return Config{}, errors.New("input file required (use -i or INPUT_FILE env)")
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = os.Getenv("OUTPUT_FILE")
		if cfg.OutputPath == "" {
			cfg.OutputPath = DefaultOutput
		}
	}

	if !cfg.Verbose {
		cfg.Verbose = envBool("VERBOSE", false)
	}
	if !cfg.Strict {
		cfg.Strict = envBool("STRICT_MODE", false)
	}
	if !cfg.Lenient {
		cfg.Lenient = envBool("LENIENT_MODE", false)
	}
	if !cfg.IncludeUnvoted {
		cfg.IncludeUnvoted = envBool("INCLUDE_UNVOTED", false)
	}

	if cfg.Strict && cfg.Lenient {
		return Config{}, errors.New("-strict and -lenient are mutually exclusive")
	}

	return cfg, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
