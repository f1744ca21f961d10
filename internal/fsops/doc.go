// Package fsops holds the small file primitives shared by the memory store and
// the calendar export: whole-file reads and temp-file-then-rename writes.
package fsops
