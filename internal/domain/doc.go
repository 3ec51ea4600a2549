// Package domain contains the entities the service reasons about: the task
// context supplied by callers and the workflow stage categories used to pick
// prompt guidance. It has no dependencies on transport or provider code.
package domain
