package log

import (
	"time"
)

// LogHTTPRequest records a served HTTP request. Successful requests are logged
// at debug level, failed ones at error level.
func LogHTTPRequest(method, path string, status int, duration time.Duration, size int, remoteAddr string, err error) {
	fields := []interface{}{
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"size", size,
		"remote_addr", remoteAddr,
	}

	if err != nil {
		log.Errorw("http request failed", append(fields, "error", err.Error())...)
		return
	}
	log.Debugw("http request", fields...)
}
