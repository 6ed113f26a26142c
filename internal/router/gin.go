package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vk/appweave/internal/ctxlog"
	"github.com/vk/appweave/internal/inject"
)

// ErrNotFound lets a component signal that the requested entity does not
// exist. The gin adapter translates it to a 404; every other render error
// is a 500.
var ErrNotFound = errors.New("not found")

// GinRouter adapts a *gin.Engine to the Registrar contract. Path params,
// query values, and a JSON body (for non-GET requests) become render props,
// in that order of increasing precedence.
type GinRouter struct {
	engine *gin.Engine
}

// NewGin wraps an existing gin engine.
func NewGin(engine *gin.Engine) *GinRouter {
	return &GinRouter{engine: engine}
}

// Register installs a gin handler that renders the bound component.
func (r *GinRouter) Register(method, path string, component *inject.Bound) {
	r.engine.Handle(method, path, func(c *gin.Context) {
		props := inject.Props{}
		for _, p := range c.Params {
			props[p.Key] = p.Value
		}
		for key, vals := range c.Request.URL.Query() {
			if len(vals) > 0 {
				props[key] = vals[0]
			}
		}
		if method != http.MethodGet && c.Request.ContentLength > 0 {
			body := map[string]any{}
			if err := c.ShouldBindJSON(&body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			for key, val := range body {
				props[key] = val
			}
		}

		out, err := component.Render(c.Request.Context(), props)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrNotFound) {
				status = http.StatusNotFound
			}
			ctxlog.FromContext(c.Request.Context()).Error("Component render failed", "method", method, "path", path, "error", err)
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	})
}
