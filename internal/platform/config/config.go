// Package config reads application configuration from environment variables
package config

import (
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"modhook/internal/platform/logger"
)

// Conf is a namespaced view over the environment. Prefix("WEBHOOK_") scopes
// a module; New() is the root
type Conf struct{ prefix string }

func New() Conf { return Conf{} }

// Prefix appends p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) get(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// fail stops boot on a required or malformed value
func (c Conf) fail(k, value, msg string) {
	logger.Get().Panic().Str("key", c.key(k)).Str("value", value).Msg(msg)
}

// optional parses key with parse, returning def when unset. A value parse
// rejects is logged and replaced by def
func optional[T any](c Conf, key string, def T, parse func(string) (T, bool)) T {
	s := c.get(key)
	if s == "" {
		return def
	}
	if v, ok := parse(s); ok {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).Msg("invalid value; using default")
	return def
}

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.get(key)
	if v == "" {
		c.fail(key, v, "missing required env")
	}
	return v
}

func (c Conf) MayString(key, def string) string {
	return optional(c, key, def, func(s string) (string, bool) { return s, true })
}

func (c Conf) MayInt(key string, def int) int {
	return optional(c, key, def, func(s string) (int, bool) {
		v, err := strconv.Atoi(s)
		return v, err == nil
	})
}

// MayInt64 only accepts positive values
func (c Conf) MayInt64(key string, def int64) int64 {
	return optional(c, key, def, func(s string) (int64, bool) {
		v, err := strconv.ParseInt(s, 10, 64)
		return v, err == nil && v > 0
	})
}

func (c Conf) MayBool(key string, def bool) bool {
	return optional(c, key, def, func(s string) (bool, bool) {
		v, err := strconv.ParseBool(s)
		return v, err == nil
	})
}

func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return optional(c, key, def, func(s string) (time.Duration, bool) {
		d, err := time.ParseDuration(s)
		return d, err == nil
	})
}

// MayURLPrefix returns an absolute URL or /path without its trailing slash.
// Relative values panic
func (c Conf) MayURLPrefix(key, def string) string {
	s := c.MayString(key, def)
	if u, err := url.Parse(s); err != nil || (!u.IsAbs() && !strings.HasPrefix(s, "/")) {
		c.fail(key, s, "invalid url prefix; expected absolute URL or /path")
	}
	return strings.TrimRight(s, "/")
}

// MayEnum lower cases the value and panics unless it is one of allowed.
// An empty def with the key unset yields ""
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(key, def))
	if v == "" || slices.ContainsFunc(allowed, func(a string) bool { return strings.EqualFold(a, v) }) {
		return v
	}
	c.fail(key, v, "invalid enum value; allowed "+strings.Join(allowed, ", "))
	return ""
}
