package exhibit

import (
	"context"
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/exhibit/internal/gemini"
)

// ErrMissingCredential is returned when API_KEY is unset or a placeholder.
var ErrMissingCredential = errors.New("api credential is not configured")

// User-facing messages.
const (
	MissingCredentialMessage = "APIキーが設定されていません。環境変数 API_KEY を確認してください。"
	PermissionMessage        = "APIキーが無効、または権限がありません(403)。Google AI Studioの設定を確認してください。"
	EmptyResponseMessage     = "API returned an empty response."
	UnexpectedMessage        = "予期せぬエラーが発生しました。"
)

// maxMessageCells bounds the width of error text echoed to the user.
const maxMessageCells = 160

// Outcome labels used for logging and metrics.
const (
	OutcomeOK         = "ok"
	OutcomeConfig     = "config"
	OutcomePermission = "permission"
	OutcomeEmpty      = "empty"
	OutcomeMalformed  = "malformed"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

var placeholderCredentials = []string{"undefined", "null", "your_api_key"}

// UsableCredential reports whether key looks like a real API key.
func UsableCredential(key string) bool {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return false
	}
	for _, placeholder := range placeholderCredentials {
		if strings.EqualFold(trimmed, placeholder) {
			return false
		}
	}
	return true
}

// Outcome classifies err into one of the Outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrMissingCredential):
		return OutcomeConfig
	case errors.Is(err, ErrEmptyResponse):
		return OutcomeEmpty
	case errors.Is(err, ErrMalformedResponse):
		return OutcomeMalformed
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	case permissionDenied(err):
		return OutcomePermission
	default:
		return OutcomeError
	}
}

// UserMessage converts a generation failure into the text shown to the user.
// Authorization failures always map to PermissionMessage; their raw API text
// is never shown. Other error text is folded onto one line and clipped.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch Outcome(err) {
	case OutcomeConfig:
		return MissingCredentialMessage
	case OutcomePermission:
		return PermissionMessage
	case OutcomeEmpty:
		return EmptyResponseMessage
	}

	var statusErr *gemini.StatusError
	if errors.As(err, &statusErr) && strings.TrimSpace(statusErr.Message) != "" {
		return oneLine(statusErr.Message)
	}
	if msg := oneLine(err.Error()); msg != "" {
		return msg
	}
	return UnexpectedMessage
}

func oneLine(s string) string {
	return runewidth.Truncate(strings.Join(strings.Fields(s), " "), maxMessageCells, "…")
}

// permissionDenied matches the API's authorization failures. The text match
// is for transports that lose the status code; response decoding errors never
// reach it because they quote model output.
func permissionDenied(err error) bool {
	if errors.Is(err, gemini.ErrPermissionDenied) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "403") || strings.Contains(msg, "PERMISSION_DENIED")
}
