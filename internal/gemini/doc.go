// Package gemini provides a thin client for the Gemini generative-language API.
//
// # Overview
//
// The package wraps google.golang.org/genai with the one call exhibit needs:
// send an instruction string together with a structured-output schema and get
// back the JSON text the model produced. Parsing and validating that text is
// left to the caller.
//
// # Client Usage
//
//	client, err := gemini.NewClient(gemini.Options{
//		APIKey: os.Getenv("API_KEY"),
//		Model:  "gemini-3-flash-preview",
//	})
//	if err != nil {
//		return err
//	}
//	text, err := client.GenerateJSON(ctx, prompt, schema)
//
// The SDK client is created on the first GenerateJSON call. A blank key is
// therefore not an error at construction time; callers are expected to check
// the credential before issuing requests.
//
// # Schemas
//
// Response schemas are authored as kin-openapi *openapi3.Schema values and
// converted by ConvertSchema. Object properties are ordered by the Required
// list first, which keeps the model's output order stable.
//
// # Error Handling
//
// API replies with a non-2xx status are returned as *StatusError carrying the
// code, the RPC status name and the server message. 401, 403 and
// PERMISSION_DENIED replies additionally match ErrPermissionDenied through
// errors.Is. Transport failures are wrapped with fmt.Errorf and passed
// through unchanged.
//
// # Request Handling
//
//   - One request per call, no retries and no caching
//   - Deadlines come from the context; the client adds none
//   - BaseURL overrides the endpoint, which tests point at httptest servers
//   - User-Agent is sent alongside the SDK's own telemetry header
package gemini
