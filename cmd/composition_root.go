package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpadapter "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/crypto"
	"fastfeet/internal/adapters/out/notify"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/postgres/userrepo"
	"fastfeet/internal/adapters/out/storage"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/jobs"

	"gorm.io/gorm"
)

// tokenLifetime bounds how long an issued bearer token stays valid.
const tokenLifetime = 24 * time.Hour

// notificationBuffer sizes the asynchronous notification queue.
const notificationBuffer = 256

// CompositionRoot wires adapters to use cases. All dependency decisions
// live here; nothing below this layer knows concrete types from other
// layers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     *crypto.BcryptHasher
	tokens     *crypto.JWTIssuer
	uploads    *storage.LocalStorage
	notifier   *notify.AsyncNotifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from validated configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := crypto.NewJWTIssuer(config.JWTSecret, tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	uploads, err := storage.NewLocalStorage(config.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload storage: %w", err)
	}

	var channel notify.Channel
	switch config.NotificationMode {
	case NotificationModeWebhook:
		channel = notify.NewWebhookChannel(config.NotificationWebhook)
	default:
		channel = notify.NewConsoleChannel(logger)
	}
	gateway := notify.NewGormNotificationGateway(gormDB, channel, logger)

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewBcryptHasher(),
		tokens:     tokens,
		uploads:    uploads,
		notifier:   notify.NewAsyncNotifier(gateway, notificationBuffer, logger),
		logger:     logger,
	}, nil
}

// Notifier exposes the asynchronous notifier so main can drain it on
// shutdown.
func (c *CompositionRoot) Notifier() *notify.AsyncNotifier {
	return c.notifier
}

// CreateHTTPServer assembles the HTTP surface with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.Commands{
			CreateOrder:     c.createOrderHandler(),
			UpdateOrder:     c.updateOrderHandler(),
			DeleteOrder:     c.deleteOrderHandler(),
			MarkAwaiting:    c.markAwaitingHandler(),
			Withdraw:        c.withdrawOrderHandler(),
			Deliver:         c.deliverOrderHandler(),
			Return:          c.returnOrderHandler(),
			CreateCourier:   c.createCourierHandler(),
			UpdateCourier:   c.updateCourierHandler(),
			DeleteCourier:   c.deleteCourierHandler(),
			CreateRecipient: c.createRecipientHandler(),
			UpdateRecipient: c.updateRecipientHandler(),
			DeleteRecipient: c.deleteRecipientHandler(),
			ChangePassword:  c.changePasswordHandler(),
		},
		httpadapter.Queries{
			Authenticate:      queries.NewAuthenticateQueryHandler(c.gormDB, c.hasher, c.tokens),
			GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
			ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
			ListCourierOrders: queries.NewListCourierOrdersQueryHandler(c.gormDB),
			ListNearbyOrders:  queries.NewListNearbyOrdersQueryHandler(c.gormDB),
			GetOrderEvents:    queries.NewGetOrderEventsQueryHandler(c.gormDB),
			GetCourier:        queries.NewGetCourierQueryHandler(c.gormDB),
			GetCourierByUser:  queries.NewGetCourierByUserQueryHandler(c.gormDB),
			ListCouriers:      queries.NewListCouriersQueryHandler(c.gormDB),
			GetRecipient:      queries.NewGetRecipientQueryHandler(c.gormDB),
			ListRecipients:    queries.NewListRecipientsQueryHandler(c.gormDB),
		},
		c.uploads,
		c.tokens,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.gormDB, c.uploads.Dir(), c.logger)
}

// SeedAdmin creates the bootstrap admin account when no admin exists yet
// and seed credentials are configured. Without an admin the API is
// unreachable, every other account is created through it.
func (c *CompositionRoot) SeedAdmin(ctx context.Context) error {
	if c.config.SeedAdminCPF == "" || c.config.SeedAdminPassword == "" {
		return nil
	}

	repo := userrepo.NewGormUserRepository(c.gormDB)

	hasAdmin, err := repo.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if hasAdmin {
		return nil
	}

	cpf, err := kernel.NewCPF(c.config.SeedAdminCPF)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	hash, err := c.hasher.Hash(c.config.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	admin, err := user.NewUser(kernel.NewUUID(), "Administrator", cpf, hash, user.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	if err = repo.Add(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	c.logger.InfoContext(ctx, "Seeded bootstrap admin account")
	return nil
}

func (c *CompositionRoot) createOrderHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) updateOrderHandler() commands.UpdateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) deleteOrderHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) markAwaitingHandler() commands.MarkAwaitingOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkAwaitingOrderCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) withdrawOrderHandler() commands.WithdrawOrderCommandHandler {
	return commands.NewWithdrawOrderCommandHandler(c.courierTransitionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) deliverOrderHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.courierTransitionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) returnOrderHandler() commands.ReturnOrderCommandHandler {
	return commands.NewReturnOrderCommandHandler(c.courierTransitionUoWFactory(), c.notifier)
}

func (c *CompositionRoot) createCourierHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory(), c.hasher)
}

func (c *CompositionRoot) updateCourierHandler() commands.UpdateCourierCommandHandler {
	return commands.NewUpdateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) deleteCourierHandler() commands.DeleteCourierCommandHandler {
	return commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) createRecipientHandler() commands.CreateRecipientCommandHandler {
	return commands.NewCreateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) updateRecipientHandler() commands.UpdateRecipientCommandHandler {
	return commands.NewUpdateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) deleteRecipientHandler() commands.DeleteRecipientCommandHandler {
	return commands.NewDeleteRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) changePasswordHandler() commands.ChangePasswordCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePasswordCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) courierTransitionUoWFactory() commands.CourierTransitionUoWFactory {
	return FuncCourierTransitionUoWFactory(func() commands.CourierTransitionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recipientUoWFactory() commands.RecipientUoWFactory {
	return FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncCourierTransitionUoWFactory func() commands.CourierTransitionUoW

func (f FuncCourierTransitionUoWFactory) Create() commands.CourierTransitionUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
