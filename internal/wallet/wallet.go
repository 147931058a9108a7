// Package wallet resolves the account connected to a session and decides
// whether it may use operator controls.
package wallet

import (
	"strings"

	"github.com/vovakirdan/melodle/internal/digest"
)

// Bridge reports the account connected to the current session.
type Bridge interface {
	// ConnectedAccount returns the account address and whether one is connected.
	ConnectedAccount() (string, bool)
}

// Static is a fixed account, typically from a CLI flag or environment.
// The zero value means no wallet is connected.
type Static string

// ConnectedAccount implements Bridge.
func (s Static) ConnectedAccount() (string, bool) {
	addr := strings.TrimSpace(string(s))
	return addr, addr != ""
}

// FromPublicKey returns a Static account derived from an SSH public key.
// A nil or empty key yields a disconnected wallet.
func FromPublicKey(key []byte) Static {
	if len(key) == 0 {
		return ""
	}
	return Static(digest.Address(key))
}

// IsOperator reports whether account matches the configured operator address.
// Comparison is case-insensitive; an empty operator never matches.
func IsOperator(account, operator string) bool {
	account = strings.TrimSpace(account)
	operator = strings.TrimSpace(operator)
	if account == "" || operator == "" {
		return false
	}
	return strings.EqualFold(account, operator)
}

// Operator reports whether the wallet's connected account is the operator.
func Operator(b Bridge, operator string) bool {
	if b == nil {
		return false
	}
	account, ok := b.ConnectedAccount()
	if !ok {
		return false
	}
	return IsOperator(account, operator)
}
