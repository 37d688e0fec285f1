package auth

import (
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk. The wallet
// handshake that writes this file belongs to the surrounding app; here we
// only consume its result.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}

// Session is a read-only snapshot of the wallet login state, taken once at
// startup. It satisfies app.Session; the core never mutates it.
type Session struct {
	wallet        string
	authenticated bool
}

// LoadSession builds a Session from the wallet address file and the token
// provider. A missing or empty wallet file yields an unauthenticated
// session rather than an error; the terminal still works read-only.
func LoadSession(walletPath string, tokens TokenProvider) Session {
	wallet := ""
	if data, err := os.ReadFile(walletPath); err == nil {
		wallet = strings.TrimSpace(string(data))
	}

	_, tokenErr := tokens.AccessToken()

	return Session{
		wallet:        wallet,
		authenticated: wallet != "" && tokenErr == nil,
	}
}

// IsAuthenticated reports whether a wallet session is active.
func (s Session) IsAuthenticated() bool { return s.authenticated }

// WalletAddress returns the connected wallet address, or "".
func (s Session) WalletAddress() string { return s.wallet }
