package httpx

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*Context)
type MiddlewareFunc func(*Context)

// Server wraps a gin.Engine, mirroring common/http/server.go's
// HttpServer.
type Server struct {
	engine *gin.Engine
	server *http.Server
	port   int
}

func NewServer(port int) *Server {
	e := gin.New()
	e.Use(gin.Recovery())
	return &Server{engine: e, port: port}
}

func (s *Server) wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(newContext(c))
	}
}

func (s *Server) Use(m MiddlewareFunc) {
	s.engine.Use(func(c *gin.Context) {
		ctx := newContext(c)
		m(ctx)
		if !c.IsAborted() {
			c.Next()
		}
	})
}

func (s *Server) POST(path string, h HandlerFunc) {
	s.engine.POST(path, s.wrap(h))
}

func (s *Server) GET(path string, h HandlerFunc) {
	s.engine.GET(path, s.wrap(h))
}

func (s *Server) Start() error {
	s.server = &http.Server{Addr: fmt.Sprintf(":%d", s.port), Handler: s.engine}
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
