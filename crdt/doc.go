/*
Package crdt implements the merge engine behind a shared to-do list that several
users edit concurrently. Each field of an entry (existence, completion, name) is a
last-writer-wins register keyed by timestamp, with a deterministic per-field tie-break
for equal timestamps, so the resolved view does not depend on the order in which
edits were delivered.

Every user's latest edit per field is remembered independently of whether that user
is currently allowed to contribute. Dismissing a user retracts their contributions
from all entries, allowing them again replays what they last attempted.

CAUTION! Access to the functions this package provides is expected to be synchronized
explicitly by some outside measures, e.g. by wrapping calls to this package with a
mutex lock if concurrent access is possible. This package does not(!) synchronize
access by itself. Package list provides such a wrapper.
*/
package crdt
