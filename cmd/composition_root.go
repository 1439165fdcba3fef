package cmd

import (
	"log/slog"
	"os"
	"time"

	"punarvasthra/internal/adapters/out/disk"
	"punarvasthra/internal/adapters/out/postgres"
	"punarvasthra/internal/adapters/out/smtp"
	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/application/usecases/commands"
	"punarvasthra/internal/core/application/usecases/queries"
	"punarvasthra/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher notifications.Dispatcher
	tracker    notifications.Tracker
	storage    *disk.Storage
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	transport := smtp.NewGomailTransport(
		config.SMTPHost,
		config.SMTPPort,
		config.SMTPUsername,
		config.SMTPPassword,
		config.SMTPFrom,
	)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: notifications.NewDispatcher(transport, logger),
		tracker:    notifications.NewTracker(time.Now, logger),
		storage:    disk.NewStorage(config.UploadsDir),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateSubmissionCommandHandler() commands.CreateSubmissionCommandHandler {
	return commands.NewCreateSubmissionCommandHandler(c.submissionUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateChangeSubmissionStatusCommandHandler() commands.ChangeSubmissionStatusCommandHandler {
	return commands.NewChangeSubmissionStatusCommandHandler(c.submissionUoWFactory(), c.dispatcher, c.tracker, c.logger)
}

func (c *CompositionRoot) CreateDeleteSubmissionCommandHandler() commands.DeleteSubmissionCommandHandler {
	return commands.NewDeleteSubmissionCommandHandler(c.submissionUoWFactory(), c.storage, c.logger)
}

func (c *CompositionRoot) CreateCreateCustomizationRequestCommandHandler() commands.CreateCustomizationRequestCommandHandler {
	return commands.NewCreateCustomizationRequestCommandHandler(c.customizationUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateAssignTailorCommandHandler() commands.AssignTailorCommandHandler {
	return commands.NewAssignTailorCommandHandler(c.customizationUoWFactory(), c.dispatcher, c.tracker, c.logger)
}

func (c *CompositionRoot) CreateChangeCustomizationStatusCommandHandler() commands.ChangeCustomizationStatusCommandHandler {
	return commands.NewChangeCustomizationStatusCommandHandler(c.customizationUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), time.Now)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateResendNotificationCommandHandler() commands.ResendNotificationCommandHandler {
	return commands.NewResendNotificationCommandHandler(c.submissionUoWFactory(), c.customizationUoWFactory(), c.dispatcher, c.tracker)
}

func (c *CompositionRoot) CreateExpireStaleDeliveriesCommandHandler() commands.ExpireStaleDeliveriesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStaleDeliveriesCommandHandler(f, time.Now)
}

func (c *CompositionRoot) CreateGetAllSubmissionsQueryHandler() queries.GetAllSubmissionsQueryHandler {
	return queries.NewGetAllSubmissionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnfinishedOrdersQueryHandler() queries.GetUnfinishedOrdersQueryHandler {
	return queries.NewGetUnfinishedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireStaleDeliveriesCommandHandler(),
		c.config.SweepSchedule,
		c.config.StaleCutoff,
		c.logger,
	)
}

func (c *CompositionRoot) submissionUoWFactory() commands.SubmissionUoWFactory {
	return FuncSubmissionUoWFactory(func() commands.SubmissionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customizationUoWFactory() commands.CustomizationUoWFactory {
	return FuncCustomizationUoWFactory(func() commands.CustomizationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncSubmissionUoWFactory func() commands.SubmissionUoW

func (f FuncSubmissionUoWFactory) Create() commands.SubmissionUoW {
	return f()
}

type FuncCustomizationUoWFactory func() commands.CustomizationUoW

func (f FuncCustomizationUoWFactory) Create() commands.CustomizationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
