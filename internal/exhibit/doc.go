// Package exhibit defines the placard data model and the request orchestrator
// that produces it.
//
// A Generator checks the API credential, renders the zookeeper instruction
// from a UserInput (BuildPrompt), asks the API for JSON matching
// ResponseSchema and decodes the reply (Decode). Failures are classified by
// Outcome and turned into display text by UserMessage:
//
//   - ErrMissingCredential: API_KEY unset or a placeholder; no request is sent
//   - permission failures (401, 403, PERMISSION_DENIED): a fixed message
//   - ErrEmptyResponse, ErrMalformedResponse: no partial Data is returned
//   - anything else: the API or transport message as-is
//
// Stats are kept exactly as received. Percent pins them to 0-1 for drawing.
package exhibit
