// Package interpret classifies free-form model output.
//
// Every reply is exactly one of:
//   - a tool call: a JSON object carrying both "tool_code" and "tool_params";
//   - a structured payload: any other JSON object, such as a recipe or a meal plan;
//   - conversational text: everything else, trimmed and with code fences removed.
//
// The JSON candidate is the greedy span from the first '{' to the last '}' in the
// reply, not a balanced-brace scan. Replies holding several objects, or prose with
// stray braces after the object, therefore fail to parse and fall back to text, or
// parse into the wrong object. That is accepted behaviour.
package interpret
