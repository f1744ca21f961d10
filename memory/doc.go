// Package memory holds the agent's per-user long-term state and the session
// transcript.
//
// Persistence model:
//   - One JSON file holds every user's Record, keyed by user id.
//   - Each Save reads the file, replaces only the caller's entry, and writes the
//     whole file back through a temp-file-then-rename.
//   - A missing or corrupt file loads as an empty Record; there is no locking, so
//     two processes saving the same user at once can lose an update.
//   - The Conversation transcript lives in memory only.
package memory
