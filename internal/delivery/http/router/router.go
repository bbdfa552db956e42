// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/FlippingBinary/grocery-deflater/internal/delivery/http/router/handler"
	"github.com/FlippingBinary/grocery-deflater/internal/delivery/middleware"
)

type RouterParams struct {
	fx.In

	GraphQLHandler      *handler.GraphQLHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	graphqlHandler      *handler.GraphQLHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		graphqlHandler:      params.GraphQLHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// The whole query surface is a single GraphQL endpoint.
	e.POST("/graphql", r.graphqlHandler.Query)
}
