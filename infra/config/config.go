package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	APIBaseURL string // Protocol API endpoint, e.g. "https://api.lens.xyz"
	TokenPath  string // Path to file containing the session access token
	WalletPath string // Path to file containing the connected wallet address
	LogPath    string // Log file path; the terminal owns stdout
	PageSize   int    // Feed items requested per page
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first, without overriding real env vars.
//
//	REDTERM_API       — protocol API URL (default: https://api.lens.xyz)
//	REDTERM_TOKEN     — token file path (default: ~/.config/redterm/token)
//	REDTERM_WALLET    — wallet address file path (default: ~/.config/redterm/wallet)
//	REDTERM_LOG       — log file path (default: ~/.config/redterm/redterm.log)
//	REDTERM_PAGESIZE  — feed page size (default: 20)
func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	api := os.Getenv("REDTERM_API")
	if api == "" {
		api = "https://api.lens.xyz"
	}
	parsed, err := url.Parse(api)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid REDTERM_API: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid REDTERM_API: only https is allowed")
	}
	api = strings.TrimRight(parsed.String(), "/")

	configDir, err := defaultConfigDir()
	if err != nil {
		return Config{}, err
	}

	tokenPath := os.Getenv("REDTERM_TOKEN")
	if tokenPath == "" {
		tokenPath = filepath.Join(configDir, "token")
	}

	walletPath := os.Getenv("REDTERM_WALLET")
	if walletPath == "" {
		walletPath = filepath.Join(configDir, "wallet")
	}

	logPath := os.Getenv("REDTERM_LOG")
	if logPath == "" {
		logPath = filepath.Join(configDir, "redterm.log")
	}

	pageSize := 20
	if raw := os.Getenv("REDTERM_PAGESIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return Config{}, fmt.Errorf("invalid REDTERM_PAGESIZE %q: must be 1..100", raw)
		}
		pageSize = n
	}

	return Config{
		APIBaseURL: api,
		TokenPath:  tokenPath,
		WalletPath: walletPath,
		LogPath:    logPath,
		PageSize:   pageSize,
	}, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "redterm"), nil
}
