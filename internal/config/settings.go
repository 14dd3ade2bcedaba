package config

import (
	"time"

	"fyne.io/fyne/v2"
	"github.com/go-playground/validator/v10"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyAccessToken    = "access_token"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultServerURL      = "http://localhost:8000"
	DefaultRequestTimeout = 15
	DefaultLanguage       = "system"

	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

var validate = validator.New()

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured CTFd base URL without a trailing slash
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the CTFd base URL
func (s *Settings) SetServerURL(url string) {
	for len(url) > 0 && url[len(url)-1] == '/' {
		url = url[:len(url)-1]
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetAccessToken returns the configured CTFd API access token
func (s *Settings) GetAccessToken() string {
	return s.app.Preferences().String(KeyAccessToken)
}

// SetAccessToken sets the CTFd API access token
func (s *Settings) SetAccessToken(token string) {
	s.app.Preferences().SetString(KeyAccessToken, token)
}

// GetRequestTimeout returns the per-request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		return DefaultRequestTimeout * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request timeout, clamped to a sane range
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ValidateServerURL reports whether the given value is a usable http(s) base URL
func ValidateServerURL(url string) error {
	return validate.Var(url, "required,http_url")
}
