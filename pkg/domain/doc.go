/*
Package domain contains the contract between the search engine and the
decision domains it explores, plus the value types shared across the module.

It is kept free of I/O and persistence concerns. Concrete games live under
pkg/games and only need to satisfy the State interface.

# Key Entities

  - State: One immutable point in a domain's search space.
  - Action: An opaque, comparable move produced by a State.
  - RoundStats: The summary returned after every search round.
  - TreeStats: A read-only snapshot of the current search tree.
  - Descriptor: The registry name and arguments used to build a root State.
*/
package domain
