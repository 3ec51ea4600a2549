// Package gemini adapts Google's Gemini API to the generation.TextModel
// interface.
//
// The adapter is deliberately thin: it sends one GenerateContent request per
// call and classifies the outcome into the generation package's error
// taxonomy. Retries, backoff and usage accounting belong to the
// generation.Orchestrator, so a failed call here is never repeated.
//
// Outcome mapping:
//   - transport or API errors wrap generation.ErrProvider
//   - a blocked prompt or a candidate stopped by safety filters wraps
//     generation.ErrProvider
//   - no candidates, or candidates without text, yield
//     generation.ErrEmptyResponse
//
// The underlying genai.Client is created once and shared by all requests.
package gemini
