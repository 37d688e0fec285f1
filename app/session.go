package app

// Session exposes the wallet login state to the core. The surrounding app
// owns the handshake; the core only reads. A Session is created on
// successful login and destroyed on logout.
type Session interface {
	// IsAuthenticated reports whether a wallet session is active.
	IsAuthenticated() bool

	// WalletAddress returns the connected wallet address, or "" when no
	// wallet is connected.
	WalletAddress() string
}
