// Package router defines the contract the composition layer expects from a
// routing backend and provides the gin-backed implementation the demo
// application serves. Modules see only the Registrar interface; the
// path-matching grammar belongs to the backend.
package router
