/*
Package mcts implements Monte Carlo Tree Search over any domain.State.

A Tree stores its nodes in a single growable slice. Parents and children are
referenced by index, so a tree holds no pointer cycles and is released as a
whole when it is dropped.

An Engine runs one round at a time against a Tree:

 1. Selection descends by UCT while a node is fully expanded.
 2. Expansion adds the first untried action, optionally restricted to an allow-list.
 3. Simulation plays out with the configured RolloutPolicy.
 4. Backpropagation updates statistics on the path back to the root.

Nothing in the tree is written until the new child state and the rollout
reward are both known, so a round that fails leaves the tree untouched.
*/
package mcts
