package router

import "github.com/gin-gonic/gin"

// Registry collects modules and mounts them on the root group or under /api.
type Registry struct {
	Engine      *gin.Engine
	Root        *gin.RouterGroup
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	rootModules []Module
	apiModules  []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Root: &engine.RouterGroup}
}

// Use adds middleware that runs for every module route.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

// AddRoot mounts mod at the engine root.
func (r *Registry) AddRoot(mod Module) {
	r.rootModules = append(r.rootModules, mod)
}

// Add mounts mod under /api.
func (r *Registry) Add(mod Module) {
	r.apiModules = append(r.apiModules, mod)
}

// RegisterAll applies the shared middleware and mounts every module.
// The /api group must be built after Use to inherit that middleware.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Engine.Use(r.middlewares...)
	}
	r.API = r.Engine.Group("/api")
	for _, m := range r.rootModules {
		m.Register(r.Root)
	}
	for _, m := range r.apiModules {
		m.Register(r.API)
	}
}
