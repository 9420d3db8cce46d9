package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

// LoggerConfig controls what the request logger records.
type LoggerConfig struct {
	EnableColors bool
	SkipPaths    []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		EnableColors: true,
		SkipPaths:    []string{"/health", "/ping"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

// LoggerWithConfig logs each request and its outcome on one line, with
// the query string sanitized so search terms show up but tokens never do.
func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, "/swagger") {
				c.Next()
				return
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method
		query := sanitizeQuery(c.Request.URL.RawQuery)

		var statusColor, methodColor, resetColor string
		if config.EnableColors {
			statusColor = statusColorFor(status)
			methodColor = methodColorFor(method)
			resetColor = colorReset
		}

		line := path
		if query != "" {
			line += "?" + query
		}

		log.Printf("%s%d%s %s%s%s %s %s%v%s %s",
			statusColor, status, resetColor,
			methodColor, method, resetColor,
			line,
			colorGray, latency, resetColor,
			c.ClientIP())

		if len(c.Errors) > 0 {
			log.Printf("%s    errors:%s %s", colorGray, resetColor, c.Errors.String())
		}
	}
}

// sensitiveParams are never echoed into logs.
var sensitiveParams = []string{"token", "secret", "password", "key", "auth"}

func sanitizeQuery(raw string) string {
	if raw == "" {
		return ""
	}

	pairs := strings.Split(raw, "&")
	for i, pair := range pairs {
		name, _, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		lower := strings.ToLower(name)
		for _, s := range sensitiveParams {
			if strings.Contains(lower, s) {
				pairs[i] = name + "=********"
				break
			}
		}
	}
	return strings.Join(pairs, "&")
}

func methodColorFor(method string) string {
	switch method {
	case "GET":
		return colorGreen
	case "POST":
		return colorBlue
	case "PUT":
		return colorYellow
	case "DELETE":
		return colorRed
	default:
		return colorWhite
	}
}

func statusColorFor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 300 && status < 400:
		return colorCyan
	case status >= 400 && status < 500:
		return colorYellow
	default:
		return colorRed
	}
}
