/*
Package session holds long-lived search sessions that callers drive one round
at a time.

A Session owns exactly one search tree. Every operation takes the session
lock for its whole duration, so a session is safe to share between
concurrent transport handlers even though rounds themselves run
sequentially. A Manager keeps independent sessions by ID and builds their
root states through a domain registry.
*/
package session
