// Package api handles incoming HTTP requests, request validation and response
// formatting. It acts as an adapter between HTTP clients and the generation
// service: handlers decode and validate a request, call one description
// operation, and map its Result onto a status code.
//
// A successful Result is returned as-is with 200. A failed Result becomes a
// 500 whose body is {"detail": ..., "trace_id": ...}; malformed or invalid
// requests become a 400 with the same body shape.
package api
