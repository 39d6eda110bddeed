package tgrouter

import (
	"slices"
)

type Middleware func(next Handler) Handler

type RouterGroup struct {
	parent      *RouterGroup
	routes      []Route
	root        bool
	middlewares []Middleware
}

func (group *RouterGroup) combineMiddlewares(middlewares ...Middleware) []Middleware {
	merged := make([]Middleware, 0, len(group.middlewares)+len(middlewares))
	merged = append(merged, middlewares...)
	merged = append(merged, group.middlewares...)
	return merged
}

func (group *RouterGroup) Use(middleware ...Middleware) {
	group.middlewares = append(group.middlewares, middleware...)
}

// On registers handler for updates matching filter. Route-level middlewares run
// innermost, group middlewares outermost.
func On[F FilterType](group *RouterGroup, filter Filter[F], handler Handler, mws ...Middleware) {
	for mw := range slices.Values(group.combineMiddlewares(mws...)) {
		handler = mw(handler)
	}

	group.addRoute(newRoute(filter, handler))
}

func (group *RouterGroup) addRoute(route Route) {
	if !group.root {
		group.parent.addRoute(route)
	} else {
		group.routes = append(group.routes, route)
	}
}

func (group *RouterGroup) Group() *RouterGroup {
	return &RouterGroup{
		parent: group,
		root:   false,
	}
}
