package router_helper

import (
	"net/http"
	"path"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers handlers on an httprouter.Router under a common prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: strings.TrimSuffix(prefix, "/")}
}

// Group returns a nested group below rg.
func (rg *RouteGroup) Group(prefix string) *RouteGroup {
	return &RouteGroup{router: rg.router, prefix: rg.path(prefix)}
}

func (rg *RouteGroup) path(p string) string {
	if p == "" || p == "/" {
		return rg.prefix
	}
	joined := path.Join(rg.prefix, p)
	if strings.HasSuffix(p, "/") && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	return joined
}

func (rg *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	rg.router.Handle(method, rg.path(p), handle)
}

func (rg *RouteGroup) Handler(method, p string, handler http.Handler) {
	rg.router.Handler(method, rg.path(p), handler)
}

func (rg *RouteGroup) GET(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodGet, p, handle)
}

func (rg *RouteGroup) POST(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodPost, p, handle)
}

func (rg *RouteGroup) PUT(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodPut, p, handle)
}

func (rg *RouteGroup) DELETE(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodDelete, p, handle)
}
