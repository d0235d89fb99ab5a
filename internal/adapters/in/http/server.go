// Package http exposes the role-gated REST surface. Handlers translate
// JSON requests into commands and queries and never touch the database
// directly.
package http

import (
	"net/http"
	"strconv"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateOrder     commands.CreateOrderCommandHandler
	UpdateOrder     commands.UpdateOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler
	MarkAwaiting    commands.MarkAwaitingOrderCommandHandler
	Withdraw        commands.WithdrawOrderCommandHandler
	Deliver         commands.DeliverOrderCommandHandler
	Return          commands.ReturnOrderCommandHandler
	CreateCourier   commands.CreateCourierCommandHandler
	UpdateCourier   commands.UpdateCourierCommandHandler
	DeleteCourier   commands.DeleteCourierCommandHandler
	CreateRecipient commands.CreateRecipientCommandHandler
	UpdateRecipient commands.UpdateRecipientCommandHandler
	DeleteRecipient commands.DeleteRecipientCommandHandler
	ChangePassword  commands.ChangePasswordCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	Authenticate      queries.AuthenticateQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	ListOrders        queries.ListOrdersQueryHandler
	ListCourierOrders queries.ListCourierOrdersQueryHandler
	ListNearbyOrders  queries.ListNearbyOrdersQueryHandler
	GetOrderEvents    queries.GetOrderEventsQueryHandler
	GetCourier        queries.GetCourierQueryHandler
	GetCourierByUser  queries.GetCourierByUserQueryHandler
	ListCouriers      queries.ListCouriersQueryHandler
	GetRecipient      queries.GetRecipientQueryHandler
	ListRecipients    queries.ListRecipientsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
	uploads  ports.FileStorage
	tokens   ports.TokenIssuer
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(c Commands, q Queries, uploads ports.FileStorage, tokens ports.TokenIssuer) *Server {
	return &Server{
		commands: c,
		queries:  q,
		uploads:  uploads,
		tokens:   tokens,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/auth/login", s.Login)

	auth := AuthMiddleware(s.tokens)

	admin := e.Group("", auth, RequireAdmin)
	admin.POST("/orders", s.CreateOrder)
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/:id", s.GetOrder)
	admin.PUT("/orders/:id", s.UpdateOrder)
	admin.DELETE("/orders/:id", s.DeleteOrder)
	admin.PATCH("/orders/:id/await", s.MarkOrderAwaiting)
	admin.GET("/orders/:id/events", s.ListOrderEvents)

	admin.PATCH("/users/:id/password", s.ChangePassword)

	admin.POST("/couriers", s.CreateCourier)
	admin.GET("/couriers", s.ListCouriers)
	admin.GET("/couriers/:id", s.GetCourier)
	admin.PUT("/couriers/:id", s.UpdateCourier)
	admin.DELETE("/couriers/:id", s.DeleteCourier)

	admin.POST("/recipients", s.CreateRecipient)
	admin.GET("/recipients", s.ListRecipients)
	admin.GET("/recipients/:id", s.GetRecipient)
	admin.PUT("/recipients/:id", s.UpdateRecipient)
	admin.DELETE("/recipients/:id", s.DeleteRecipient)

	courier := e.Group("/courier", auth)
	courier.GET("/me/orders", s.ListMyOrders, RequireCourier)
	courier.GET("/:courierId/orders", s.ListCourierOrders)
	courier.GET("/orders/nearby", s.ListNearbyOrders, RequireCourier)
	courier.PATCH("/orders/:id/withdraw", s.WithdrawOrder, RequireCourier)
	courier.PATCH("/orders/:id/deliver", s.DeliverOrder, RequireCourier)
	courier.PATCH("/orders/:id/return", s.ReturnOrder, RequireCourier)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Login handles POST /auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	query, err := queries.NewAuthenticateQuery(req.CPF, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.queries.Authenticate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponseJSON{
		Token: res.Token,
		User: loginUserJSON{
			ID:   res.UserID.String(),
			Name: res.Name,
			Role: res.Role,
		},
	})
}

// pathUUID parses a UUID path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// queryPage parses the page query parameter, defaulting to the first page.
func queryPage(ctx echo.Context) int {
	page, err := strconv.Atoi(ctx.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
