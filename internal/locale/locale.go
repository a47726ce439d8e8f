// Package locale translates the diagnostics printed on stderr.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/chicago-today/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys for one language.
type Translator struct {
	Lang      string
	Languages []string

	localizer *i18n.Localizer
	logger    *slog.Logger
}

// NewTranslator loads the embedded locale files and selects lang.
// An empty lang selects config.DefaultLanguage.
func NewTranslator(lang string, logger *slog.Logger) (*Translator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if lang == "" {
		lang = config.DefaultLanguage
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFormat, json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocaleDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleSuffix) {
			logger.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleSuffix)
		if code == "" {
			logger.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, config.LocaleDir+"/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detected = append(detected, code)
		logger.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyLang, code,
			config.LogKeyFile, name,
		)
	}

	return &Translator{
		Lang:      lang,
		Languages: detected,
		localizer: i18n.NewLocalizer(bundle, lang),
		logger:    logger,
	}, nil
}

// Msg translates key with data. Missing keys and a nil Translator yield the key.
func (t *Translator) Msg(key string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		t.logger.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// Detect picks the message language from the POSIX locale variables.
// The first non-empty variable wins, even when it names no language (C, POSIX).
func Detect(lookup func(string) (string, bool), logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}
	for _, key := range config.LocaleEnvVars {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		tag, ok := Normalize(raw)
		if !ok {
			logger.Debug(config.MsgLocaleBadEnv,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyVar, key,
				config.LogKeyValue, raw,
			)
			return config.DefaultLanguage
		}
		return tag
	}
	return config.DefaultLanguage
}

// Normalize converts a POSIX locale name such as "fr_FR.UTF-8@euro" to a BCP 47
// tag ("fr-FR"). It reports false for C, POSIX and unparseable names.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || slices.Contains(config.POSIXLocales, raw) {
		return "", false
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
