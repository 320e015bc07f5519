/*
Package observability turns session lifecycle hooks into Prometheus metrics
and structured log lines.

Metrics are registered on their own registry rather than the global default,
so several servers (or tests) can live in one process.
*/
package observability
