// Package runner drives one user turn: the prompt goes to the model, the
// reply is classified, and a tool call is dispatched against the user's
// memory record.
//
// Flow:
//
//	user(text) -> model(reply) -> interpret -> text | payload | tool call
//	tool call -> tools.Dispatch -> result
//	generate_* tools -> model(dedicated prompt) -> interpret -> ...
//
// Invariant:
//   - a prompt and its reply are appended to the conversation together, and
//     only when the model call succeeded with a non-blank reply, so the
//     transcript always alternates user and assistant and never holds an
//     empty turn.
package runner
