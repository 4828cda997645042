package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/files-manager/internal/handler"    // import the handlers that implement the endpoints
	"github.com/iliyamo/files-manager/internal/middleware" // import the session-token middleware
	"github.com/iliyamo/files-manager/internal/service"
)

// Register wires every route of the API onto the provided Echo
// instance.  Routes fall into three groups: open endpoints (register,
// login, status, stats), endpoints behind the session-token middleware,
// and the content endpoint, which handles its optional token itself so
// public files stay reachable without a session.
func Register(e *echo.Echo, auth *service.AuthService, a *handler.AuthHandler, u *handler.UsersHandler, f *handler.FilesHandler, app *handler.AppHandler) {
	// Service endpoints for monitoring and API parity with the previous
	// deployment.
	e.GET("/status", app.GetStatus)
	e.GET("/stats", app.GetStats)

	// Session lifecycle.  /connect authenticates with Basic credentials;
	// /disconnect validates its own token because a dead token must
	// produce the 401, not the middleware's.
	e.GET("/connect", a.GetConnect)
	e.GET("/disconnect", a.GetDisconnect)

	// Registration is the only unauthenticated user endpoint.
	e.POST("/users", u.PostNew)

	// Everything below requires a live session token.
	g := e.Group("", middleware.TokenAuth(auth))
	g.GET("/users/me", u.GetMe)
	g.POST("/files", f.PostUpload)
	g.GET("/files", f.GetIndex)
	g.GET("/files/:id", f.GetShow)
	g.PUT("/files/:id/publish", f.PutPublish)
	g.PUT("/files/:id/unpublish", f.PutUnpublish)

	// Content is special-cased: the token is optional.
	e.GET("/files/:id/data", f.GetFile)
}
