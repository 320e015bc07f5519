// Package registry maps domain names to the factories that build their
// initial states.
package registry
