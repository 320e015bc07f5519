/*
Package ports defines the driven ports (interfaces) of the search service.

These interfaces decouple sessions from external implementations, so the
same code runs against memory, file or Redis backed journals.

# Key Interfaces

  - JournalStore: Persists per-session round summaries (never the tree).
*/
package ports
