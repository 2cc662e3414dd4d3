package helpers

import (
	"context"
	"regexp"
	"strings"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const DateFormat = "02.01.2006"

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateFormat)
}

var unsafeFileChars = regexp.MustCompile(`[^\p{L}\p{N}_\-]+`)

// SafeFileName имя файла без пробелов и служебных символов
func SafeFileName(name, fallback string) string {
	result := strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(name), "_"), "_")
	if result == "" {
		return fallback
	}
	return result
}
