package cmd

import (
	"log/slog"
	"os"

	"gorm.io/gorm"

	"ordertaking/internal/adapters/out/geo"
	"ordertaking/internal/adapters/out/kafka"
	"ordertaking/internal/adapters/out/notifications"
	"ordertaking/internal/adapters/out/postgres"
	"ordertaking/internal/adapters/out/postgres/catalogrepo"
	"ordertaking/internal/core/application/usecases/commands"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/services"
	"ordertaking/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(config.KafkaHost, config.KafkaOrderEventsTopic),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCatalogRepository() *catalogrepo.GormCatalogRepository {
	return catalogrepo.NewGormCatalogRepository(c.gormDB)
}

func (c *CompositionRoot) CreateOrderPlacementService() services.OrderPlacementService {
	return services.NewOrderPlacementService(
		c.CreateCatalogRepository(),
		geo.NewStubAddressDirectory(c.logger),
		notifications.NewHTMLLetterRenderer(),
		notifications.NewLogAcknowledgmentSender(c.logger),
	)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(c.CreateOrderPlacementService(), f)
}

func (c *CompositionRoot) CreatePublishEventsCommandHandler() commands.PublishEventsCommandHandler {
	var f commands.EventUoWFactory = FuncEventUoWFactory(func() commands.EventUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPublishEventsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetUnpublishedEventsQueryHandler() queries.GetUnpublishedEventsQueryHandler {
	return queries.NewGetUnpublishedEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateEventRelayJob() *jobs.EventRelayJob {
	return jobs.NewEventRelayJob(c.CreatePublishEventsCommandHandler(), c.logger)
}

func (c *CompositionRoot) ClosePublisher() error {
	return c.publisher.Close()
}

type FuncEventUoWFactory func() commands.EventUoW

func (f FuncEventUoWFactory) Create() commands.EventUoW {
	return f()
}
