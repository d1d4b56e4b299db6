// Package tree implements the persistent, copy-on-write B-tree that
// backs a rope: balanced leaves of UTF-8 text, internal nodes indexed
// by cached per-subtree TextInfo summaries, and the insert/remove
// algorithms that keep both the branching factor and leaf size within
// their configured bounds.
package tree
