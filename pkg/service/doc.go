/*
Package service is the transport-neutral face of the session manager.

Every operation takes a plain request value and returns a response value
whose Error field carries a structured error instead of a Go error, so MCP,
HTTP and CLI front ends can hand responses to their callers unchanged.
*/
package service
