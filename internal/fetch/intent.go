package fetch

import (
	"strings"

	"github.com/pkg/errors"
)

// IntentKind is the tag of an Intent.
type IntentKind int

const (
	IntentLoad IntentKind = iota + 1
	IntentRetry
	IntentRefresh
	IntentClear
	IntentClearError
)

func (k IntentKind) String() string {
	switch k {
	case IntentLoad:
		return "load"
	case IntentRetry:
		return "retry"
	case IntentRefresh:
		return "refresh"
	case IntentClear:
		return "clear"
	case IntentClearError:
		return "clear-error"
	default:
		return "unknown"
	}
}

// ParseIntentKind accepts the String form of an IntentKind.
func ParseIntentKind(s string) (IntentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "load":
		return IntentLoad, nil
	case "retry":
		return IntentRetry, nil
	case "refresh":
		return IntentRefresh, nil
	case "clear":
		return IntentClear, nil
	case "clear-error", "clearerror":
		return IntentClearError, nil
	default:
		return 0, errors.Errorf("unknown intent: %q", s)
	}
}

// Intent is a request to change the fetch state of one key.
type Intent struct {
	Kind IntentKind
	Key  Key
}

// Load starts a fetch for key.
func Load(key Key) Intent { return Intent{Kind: IntentLoad, Key: key} }

// Retry starts a fetch for key after a failure.
func Retry(key Key) Intent { return Intent{Kind: IntentRetry, Key: key} }

// Refresh refetches key while keeping the last known data visible.
func Refresh(key Key) Intent { return Intent{Kind: IntentRefresh, Key: key} }

// Clear drops key's data and error without touching an in-flight load.
func Clear(key Key) Intent { return Intent{Kind: IntentClear, Key: key} }

// ClearError dismisses key's error.
func ClearError(key Key) Intent { return Intent{Kind: IntentClearError, Key: key} }

// Policy decides what a Load or Retry does while the key is already loading.
type Policy int

const (
	// PolicyRestart starts a new operation; the older one's result is discarded.
	PolicyRestart Policy = iota
	// PolicyIgnoreInFlight drops the intent and lets the running operation finish.
	PolicyIgnoreInFlight
)

func (p Policy) String() string {
	if p == PolicyIgnoreInFlight {
		return "ignore"
	}

	return "restart"
}

// ParsePolicy accepts "restart" or "ignore".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "restart":
		return PolicyRestart, nil
	case "ignore", "ignore-in-flight":
		return PolicyIgnoreInFlight, nil
	default:
		return PolicyRestart, errors.Errorf("unknown duplicate policy: %q", s)
	}
}
