package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	BattleMetricsServerID string
	BattleMetricsToken    string
	DiscordToken          string
	BanlogChannelID       string
	StatusCategoryID      string
	Tags                  TagConfig
	Port                  int
	ArchiveSpreadsheetID  string
	CredentialsFile       string
	StatusExportFile      string
	StatusDeployURL       string
	StatusDeployKey       string
	StatusInterval        time.Duration
	BanInterval           time.Duration
}

// TagConfig holds the Discord forum tag IDs for each ban label.
// Unset entries mean the label is not configured in the target forum.
type TagConfig struct {
	Banned      string
	Sorted      string
	Kicked      string
	Teamkilling string
	WrongMob    string
	Cheating    string
	Toxic       string
	Kamikazi    string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	serverID := os.Getenv("BATTLEMETRICS_SERVER_ID")
	if serverID == "" {
		return nil, fmt.Errorf("BATTLEMETRICS_SERVER_ID environment variable is required")
	}

	bmToken := os.Getenv("BATTLEMETRICS_API_TOKEN")
	if bmToken == "" {
		return nil, fmt.Errorf("BATTLEMETRICS_API_TOKEN environment variable is required")
	}

	discordToken := os.Getenv("DISCORD_BOT_TOKEN")
	if discordToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN environment variable is required")
	}

	banlogChannelID := os.Getenv("BANLOG_CHANNEL_ID")
	if banlogChannelID == "" {
		return nil, fmt.Errorf("BANLOG_CHANNEL_ID environment variable is required")
	}

	statusCategoryID := os.Getenv("STATUS_CATEGORY_ID")
	if statusCategoryID == "" {
		return nil, fmt.Errorf("STATUS_CATEGORY_ID environment variable is required")
	}

	port := 3000
	if portStr := os.Getenv("PORT"); portStr != "" {
		parsed, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("PORT must be a number, got %q", portStr)
		}
		port = parsed
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = "credentials.json"
	}

	deployKey := os.Getenv("STATUS_DEPLOY_KEY")
	if deployKey == "" {
		deployKey = "deploy.pem"
	}

	return &Config{
		BattleMetricsServerID: serverID,
		BattleMetricsToken:    bmToken,
		DiscordToken:          discordToken,
		BanlogChannelID:       banlogChannelID,
		StatusCategoryID:      statusCategoryID,
		Tags: TagConfig{
			Banned:      os.Getenv("TAG_BANNED"),
			Sorted:      os.Getenv("TAG_SORTED"),
			Kicked:      os.Getenv("TAG_KICKED"),
			Teamkilling: os.Getenv("TAG_TEAMKILLING"),
			WrongMob:    os.Getenv("TAG_WRONG_MOB"),
			Cheating:    os.Getenv("TAG_CHEATING"),
			Toxic:       os.Getenv("TAG_TOXIC"),
			Kamikazi:    os.Getenv("TAG_KAMIKAZI"),
		},
		Port:                 port,
		ArchiveSpreadsheetID: os.Getenv("ARCHIVE_SPREADSHEET_ID"),
		CredentialsFile:      credentialsFile,
		StatusExportFile:     os.Getenv("STATUS_EXPORT_FILE"),
		StatusDeployURL:      os.Getenv("STATUS_DEPLOY_URL"),
		StatusDeployKey:      deployKey,
	}, nil
}
