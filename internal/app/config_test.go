package app

import (
	"os"
	"strings"
	"testing"
)

var requiredEnv = []string{
	"BATTLEMETRICS_SERVER_ID",
	"BATTLEMETRICS_API_TOKEN",
	"DISCORD_BOT_TOKEN",
	"BANLOG_CHANNEL_ID",
	"STATUS_CATEGORY_ID",
}

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BATTLEMETRICS_SERVER_ID", "1234567")
	t.Setenv("BATTLEMETRICS_API_TOKEN", "test_bm_token")
	t.Setenv("DISCORD_BOT_TOKEN", "test_discord_token")
	t.Setenv("BANLOG_CHANNEL_ID", "111111111111111111")
	t.Setenv("STATUS_CATEGORY_ID", "222222222222222222")
}

func TestLoadConfig(t *testing.T) {
	t.Run("ValidConfiguration", func(t *testing.T) {
		setValidEnv(t)

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.BattleMetricsServerID != "1234567" {
			t.Errorf("Expected BattleMetricsServerID '1234567', got '%s'", config.BattleMetricsServerID)
		}

		if config.DiscordToken != "test_discord_token" {
			t.Errorf("Expected DiscordToken 'test_discord_token', got '%s'", config.DiscordToken)
		}

		if config.BanlogChannelID != "111111111111111111" {
			t.Errorf("Expected BanlogChannelID '111111111111111111', got '%s'", config.BanlogChannelID)
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("PORT", "")
		t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
		t.Setenv("STATUS_DEPLOY_KEY", "")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.Port != 3000 {
			t.Errorf("Expected Port to default to 3000, got %d", config.Port)
		}

		if config.CredentialsFile != "credentials.json" {
			t.Errorf("Expected CredentialsFile to default to 'credentials.json', got '%s'", config.CredentialsFile)
		}

		if config.StatusDeployKey != "deploy.pem" {
			t.Errorf("Expected StatusDeployKey to default to 'deploy.pem', got '%s'", config.StatusDeployKey)
		}
	})

	t.Run("MissingRequiredVariables", func(t *testing.T) {
		for _, key := range requiredEnv {
			t.Run(key, func(t *testing.T) {
				setValidEnv(t)
				t.Setenv(key, "")
				// t.Setenv with "" still leaves the variable set
				os.Unsetenv(key)

				_, err := LoadConfig()
				if err == nil {
					t.Fatalf("Expected error when %s is missing", key)
				}

				if !strings.Contains(err.Error(), key) {
					t.Errorf("Expected error to name %s, got: %v", key, err)
				}
			})
		}
	})

	t.Run("InvalidPort", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("PORT", "not-a-port")

		_, err := LoadConfig()
		if err == nil {
			t.Fatal("Expected error for non-numeric PORT")
		}
	})

	t.Run("ForumTags", func(t *testing.T) {
		setValidEnv(t)
		t.Setenv("TAG_CHEATING", "333333333333333333")
		t.Setenv("TAG_TEAMKILLING", "444444444444444444")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.Tags.Cheating != "333333333333333333" {
			t.Errorf("Expected Tags.Cheating '333333333333333333', got '%s'", config.Tags.Cheating)
		}

		if config.Tags.Teamkilling != "444444444444444444" {
			t.Errorf("Expected Tags.Teamkilling '444444444444444444', got '%s'", config.Tags.Teamkilling)
		}

		if config.Tags.Banned != "" {
			t.Errorf("Expected unset Tags.Banned to be empty, got '%s'", config.Tags.Banned)
		}
	})
}

func TestBanRecordResult(t *testing.T) {
	permanent := BanRecord{ID: "1", Permanent: true}
	if permanent.Result() != "Permanently banned" {
		t.Errorf("Expected 'Permanently banned', got '%s'", permanent.Result())
	}

	temporary := BanRecord{ID: "2", Permanent: false}
	if temporary.Result() != "Temporary ban" {
		t.Errorf("Expected 'Temporary ban', got '%s'", temporary.Result())
	}
}
