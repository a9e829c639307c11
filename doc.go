/*
Package trie provides a prefix tree for storing a set of strings.
It supports exact membership tests, prefix completion, enumeration of every
stored string and bounded-distance suggestions, each with a cost that depends
on the length of the query and the size of the matched region rather than on
the number of strings stored.

Results are produced in the order edges were first inserted, so output is
deterministic for a given insertion sequence.

A Tree is not safe for concurrent mutation. Once loading is finished, any
number of goroutines may read from it at the same time.
*/
package trie
