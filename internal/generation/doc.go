// Package generation turns task descriptions into LLM output. It contains the
// prompt builders, the retrying orchestrator that calls the model, the length
// post-processor for generated descriptions, and the Service that composes
// them into the generate, shorten and expand operations.
//
// The model itself is reached through the TextModel interface, which keeps the
// Gemini client (internal/platform/gemini) out of this package and lets tests
// substitute a stub.
package generation
