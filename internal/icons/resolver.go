// Package icons maps free-form icon names, both legacy asset names such as
// "lcloud-lsunny" and canonical ones such as "Partly_Cloudy", onto the closed
// IconCategory vocabulary and the themed asset path that renders it.
//
// Resolution is an ordered chain of steps. Each step either names a category
// or passes, and the first answer wins:
//
//	exact      sanitized token is a category or a known alias
//	legacy     same lookup after removing the per-word "l" prefix
//	extension  a trailing .png/.svg is dropped and the chain runs again
//
// When every step passes the token resolves to IconUnknown, so Path never
// fails.
package icons

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/types"
)

const (
	DefaultLightFolder = "WeatherIconsLight"
	DefaultDarkFolder  = "WeatherIconsDark"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme treats anything other than "dark" as the light theme.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// step is one link of the resolution chain.
type step func(token string) (types.IconCategory, bool)

type Resolver struct {
	lightFolder string
	darkFolder  string
	lookup      map[string]types.IconCategory
	chain       []step
	metrics     *observability.Metrics
	logger      *slog.Logger
}

// NewResolver builds a resolver for the given asset folders. Empty folder
// names fall back to the defaults. metrics may be nil.
func NewResolver(lightFolder, darkFolder string, metrics *observability.Metrics, logger *slog.Logger) *Resolver {
	if lightFolder == "" {
		lightFolder = DefaultLightFolder
	}
	if darkFolder == "" {
		darkFolder = DefaultDarkFolder
	}

	r := &Resolver{
		lightFolder: strings.Trim(lightFolder, "/"),
		darkFolder:  strings.Trim(darkFolder, "/"),
		lookup:      buildLookup(),
		metrics:     metrics,
		logger:      logger.With("component", "icon-resolver"),
	}
	r.chain = []step{r.exact, r.legacy, r.extension}
	return r
}

// Resolve maps a token to its category, IconUnknown when nothing matches.
func (r *Resolver) Resolve(token string) types.IconCategory {
	if strings.TrimSpace(token) == "" {
		return types.IconUnknown
	}
	if category, ok := r.run(token); ok {
		return category
	}

	r.logger.Debug("icon token did not resolve, using fallback", "token", token)
	if r.metrics != nil {
		r.metrics.IconFallbacks.Inc()
	}
	return types.IconUnknown
}

// Path returns the themed asset path for a token, e.g.
// "/WeatherIconsLight/Partly_Cloudy.svg".
func (r *Resolver) Path(token string, theme Theme) string {
	return r.CategoryPath(r.Resolve(token), theme)
}

// CategoryPath returns the themed asset path for a category.
func (r *Resolver) CategoryPath(category types.IconCategory, theme Theme) string {
	folder := r.lightFolder
	if theme == ThemeDark {
		folder = r.darkFolder
	}
	return fmt.Sprintf("/%s/%s.svg", folder, category)
}

// FallbackPath is the asset shown when a token cannot be resolved.
func (r *Resolver) FallbackPath(theme Theme) string {
	return r.CategoryPath(types.IconUnknown, theme)
}

func (r *Resolver) run(token string) (types.IconCategory, bool) {
	for _, s := range r.chain {
		if category, ok := s(token); ok {
			return category, true
		}
	}
	return "", false
}

func (r *Resolver) match(key string) (types.IconCategory, bool) {
	if key == "" {
		return "", false
	}
	category, ok := r.lookup[key]
	return category, ok
}

func (r *Resolver) exact(token string) (types.IconCategory, bool) {
	return r.match(sanitize(token))
}

func (r *Resolver) legacy(token string) (types.IconCategory, bool) {
	return r.match(stripLegacyPrefix(token))
}

func (r *Resolver) extension(token string) (types.IconCategory, bool) {
	stripped, ok := stripImageExtension(token)
	if !ok {
		return "", false
	}
	return r.run(stripped)
}
