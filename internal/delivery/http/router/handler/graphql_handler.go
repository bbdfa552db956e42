// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"

	"github.com/FlippingBinary/grocery-deflater/internal/delivery/http/response"
)

// GraphQLHandler serves the query endpoint backed by the executable schema.
type GraphQLHandler struct {
	schema graphql.Schema
	logger *slog.Logger
}

// NewGraphQLHandler is the constructor for GraphQLHandler, injected by Fx.
func NewGraphQLHandler(schema graphql.Schema, logger *slog.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema: schema,
		logger: logger,
	}
}

type graphqlRequest struct {
	Query         string                 `json:"query" validate:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query executes a GraphQL request. Resolver failures surface in the result's
// errors array with the domain error code in extensions; the HTTP status stays
// 200 for executed requests.
func (h *GraphQLHandler) Query(c echo.Context) error {
	var req graphqlRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing query")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})
	if result.HasErrors() {
		h.logger.Warn("GraphQL request completed with errors",
			slog.Int("errorCount", len(result.Errors)),
			slog.String("firstError", result.Errors[0].Message),
		)
	}

	return c.JSON(http.StatusOK, result)
}

// HealthCheck is a simple liveness endpoint.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
