// gcal-auth authorizes Google Calendar access once and stores the OAuth token
// where cmd/api looks for it (google_calendar.token_path).
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json]
//
// Open the printed URL, sign in, then paste the authorization code.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"life-admin/config"
	"life-admin/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf(ctx, "Failed to load config: %v", err)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	if credsPath == "" {
		credsPath = "google-credentials.json"
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	oauthConfig, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials (%q must be an OAuth desktop app file): %v", credsPath, err)
	}

	authURL := oauthConfig.AuthCodeURL("life-admin", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	tokenPath := cfg.GoogleCalendar.TokenPath
	if dir := filepath.Dir(tokenPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			logger.Fatalf(ctx, "Failed to create %s: %v", dir, err)
		}
	}

	raw, err := json.Marshal(tok)
	if err != nil {
		logger.Fatalf(ctx, "Failed to encode token: %v", err)
	}
	if err := os.WriteFile(tokenPath, raw, 0o600); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}

	logger.Infof(ctx, "Token saved to %s. Restart cmd/api to enable calendar push.", tokenPath)
}
