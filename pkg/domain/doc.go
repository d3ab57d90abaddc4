// Package domain contains the core vocabulary of the booking wizard:
// the wizard state, travelers, destinations, the closed step and action
// sets, the pure transition function and the validation predicates.
//
// Everything here is plain serializable data and side-effect-free
// functions. Persistence, transport and rendering live in the adapter
// packages.
package domain
