// Package httpx wraps github.com/gin-gonic/gin the way
// common/http does: a HandlerFunc/MiddlewareFunc pair over a thin
// Context, and a uniform {code, message, data} response envelope.
package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context wraps gin.Context behind this package's own request/response
// surface.
type Context struct {
	ginCtx *gin.Context
}

func newContext(c *gin.Context) *Context {
	return &Context{ginCtx: c}
}

func (c *Context) BindJSON(obj any) error {
	return c.ginCtx.ShouldBindJSON(obj)
}

func (c *Context) JSON(code int, obj any) {
	c.ginCtx.JSON(code, obj)
}

func (c *Context) GetHeader(key string) string {
	return c.ginCtx.GetHeader(key)
}

func (c *Context) SetHeader(key, value string) {
	c.ginCtx.Header(key, value)
}

func (c *Context) Method() string {
	return c.ginCtx.Request.Method
}

func (c *Context) Path() string {
	return c.ginCtx.Request.URL.Path
}

func (c *Context) ClientIP() string {
	return c.ginCtx.ClientIP()
}

func (c *Context) Set(key string, value any) {
	c.ginCtx.Set(key, value)
}

func (c *Context) GetString(key string) string {
	return c.ginCtx.GetString(key)
}

func (c *Context) Abort() {
	c.ginCtx.Abort()
}

// Raw gives escape-hatch access to the underlying gin.Context.
func (c *Context) Raw() *gin.Context {
	return c.ginCtx
}

// Envelope is the uniform response shape, mirroring common/http's
// Response struct.
type Envelope struct {
	Code    int `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	CodeSuccess     = 0
	CodeError       = -1
	CodeInvalidParam = 10001
	CodeServerError = 10005
)

func (c *Context) Success(data any) {
	c.JSON(http.StatusOK, Envelope{Code: CodeSuccess, Message: "success", Data: data})
}

func (c *Context) BadRequest(message string) {
	c.JSON(http.StatusBadRequest, Envelope{Code: CodeInvalidParam, Message: message})
}

func (c *Context) InternalServerError(message string) {
	c.JSON(http.StatusInternalServerError, Envelope{Code: CodeServerError, Message: message})
}
