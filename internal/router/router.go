package router

import "github.com/vk/appweave/internal/inject"

// Registrar registers a bound component under a method and path. It is the
// sole surface a module's routes hook touches.
type Registrar interface {
	Register(method, path string, component *inject.Bound)
}
