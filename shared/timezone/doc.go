// Package timezone provides timezone utilities for the application.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names such as "UTC", "Asia/Jakarta"
// or "America/New_York".
package timezone
