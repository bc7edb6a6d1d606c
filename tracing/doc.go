// Package tracing provides a thin wrapper around OpenTelemetry so the rest
// of the code-base can record spans without being concerned with the
// underlying SDK wiring.
package tracing
