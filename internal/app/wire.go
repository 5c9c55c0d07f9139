//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	courier_put "dispatch/internal/handlers/rest/courier_put"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	dispatch_get "dispatch/internal/handlers/rest/dispatch_get"
	dispatch_post "dispatch/internal/handlers/rest/dispatch_post"
	dispatch_put "dispatch/internal/handlers/rest/dispatch_put"
	dispatch_transition_post "dispatch/internal/handlers/rest/dispatch_transition_post"
	dispatches_get "dispatch/internal/handlers/rest/dispatches_get"
	dispatches_stats_get "dispatch/internal/handlers/rest/dispatches_stats_get"
	pharmacies_get "dispatch/internal/handlers/rest/pharmacies_get"
	pharmacy_assignment_post "dispatch/internal/handlers/rest/pharmacy_assignment_post"
	pharmacy_assignment_reassign_post "dispatch/internal/handlers/rest/pharmacy_assignment_reassign_post"
	pharmacy_assignment_release_post "dispatch/internal/handlers/rest/pharmacy_assignment_release_post"
	pharmacy_get "dispatch/internal/handlers/rest/pharmacy_get"
	pharmacy_post "dispatch/internal/handlers/rest/pharmacy_post"
	pharmacy_put "dispatch/internal/handlers/rest/pharmacy_put"
	vehicle_assignment_post "dispatch/internal/handlers/rest/vehicle_assignment_post"
	vehicle_assignment_reassign_post "dispatch/internal/handlers/rest/vehicle_assignment_reassign_post"
	vehicle_assignment_release_post "dispatch/internal/handlers/rest/vehicle_assignment_release_post"
	vehicle_get "dispatch/internal/handlers/rest/vehicle_get"
	vehicle_post "dispatch/internal/handlers/rest/vehicle_post"
	vehicle_put "dispatch/internal/handlers/rest/vehicle_put"
	vehicles_get "dispatch/internal/handlers/rest/vehicles_get"
	"dispatch/internal/handlers/tasks/license_expiry"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/metrics"

	courierRepo "dispatch/internal/repository/courier"
	dispatchRepo "dispatch/internal/repository/dispatch"
	pharmacyRepo "dispatch/internal/repository/pharmacy"
	pharmacyAssignmentRepo "dispatch/internal/repository/pharmacy_assignment"
	vehicleRepo "dispatch/internal/repository/vehicle"
	vehicleAssignmentRepo "dispatch/internal/repository/vehicle_assignment"
	"dispatch/internal/service/access"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	"dispatch/internal/service/ownership_sync"
	pharmacyService "dispatch/internal/service/pharmacy"
	pharmacyAssignmentService "dispatch/internal/service/pharmacy_assignment"
	vehicleService "dispatch/internal/service/vehicle"
	vehicleAssignmentService "dispatch/internal/service/vehicle_assignment"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	LicenseCheckInterval time.Duration
)

type Application struct {
	ServiceCourier            ServiceCourier
	ServiceVehicle            ServiceVehicle
	ServicePharmacy           ServicePharmacy
	ServiceVehicleAssignment  ServiceVehicleAssignment
	ServicePharmacyAssignment ServicePharmacyAssignment
	ServiceDispatch           ServiceDispatch
	Policy                    *access.Policy
	BackgroundWorkers         *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceVehicle interface {
	vehicle_get.Service
	vehicle_post.Service
	vehicle_put.Service
	vehicles_get.Service
}

type ServicePharmacy interface {
	pharmacy_get.Service
	pharmacy_post.Service
	pharmacy_put.Service
	pharmacies_get.Service
}

type ServiceVehicleAssignment interface {
	vehicle_assignment_post.Service
	vehicle_assignment_release_post.Service
	vehicle_assignment_reassign_post.Service
}

type ServicePharmacyAssignment interface {
	pharmacy_assignment_post.Service
	pharmacy_assignment_release_post.Service
	pharmacy_assignment_reassign_post.Service
}

type ServiceDispatch interface {
	dispatch_get.Service
	dispatch_post.Service
	dispatch_put.Service
	dispatch_transition_post.Service
	dispatches_get.Service
	dispatches_stats_get.Service
}

var repositorySet = wire.NewSet(
	provideRetrier,
	provideTxManager,
	provideQuerier,

	courierRepo.New,
	vehicleRepo.New,
	pharmacyRepo.New,
	vehicleAssignmentRepo.New,
	pharmacyAssignmentRepo.New,
	dispatchRepo.New,

	wire.Bind(new(courierRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(vehicleRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(pharmacyRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(vehicleAssignmentRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(pharmacyAssignmentRepo.Querier), new(*querier.Querier)),
	wire.Bind(new(dispatchRepo.Querier), new(*querier.Querier)),
)

var serviceSet = wire.NewSet(
	access.New,
	provideVehicleAssignmentOptions,

	courierService.New,
	pharmacyService.New,
	pharmacyAssignmentService.New,
	vehicleAssignmentService.New,
	ownership_sync.New,
	vehicleService.New,
	dispatchService.New,

	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(courierService.PharmacyAssignmentCounter), new(*pharmacyAssignmentRepo.Repository)),
	wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

	wire.Bind(new(pharmacyService.Repository), new(*pharmacyRepo.Repository)),

	wire.Bind(new(pharmacyAssignmentService.Repository), new(*pharmacyAssignmentRepo.Repository)),
	wire.Bind(new(pharmacyAssignmentService.CourierRepository), new(*courierRepo.Repository)),
	wire.Bind(new(pharmacyAssignmentService.PharmacyRepository), new(*pharmacyRepo.Repository)),
	wire.Bind(new(pharmacyAssignmentService.TxManager), new(*tx.Manager)),

	wire.Bind(new(vehicleAssignmentService.Repository), new(*vehicleAssignmentRepo.Repository)),
	wire.Bind(new(vehicleAssignmentService.CourierRepository), new(*courierRepo.Repository)),
	wire.Bind(new(vehicleAssignmentService.VehicleRepository), new(*vehicleRepo.Repository)),
	wire.Bind(new(vehicleAssignmentService.PharmacyReleaser), new(*pharmacyAssignmentService.Manager)),
	wire.Bind(new(vehicleAssignmentService.TxManager), new(*tx.Manager)),

	wire.Bind(new(ownership_sync.AssignmentManager), new(*vehicleAssignmentService.Manager)),
	wire.Bind(new(ownership_sync.AssignmentReader), new(*vehicleAssignmentService.Manager)),

	wire.Bind(new(vehicleService.Repository), new(*vehicleRepo.Repository)),
	wire.Bind(new(vehicleService.AssignmentReader), new(*vehicleAssignmentService.Manager)),
	wire.Bind(new(vehicleService.Synchronizer), new(*ownership_sync.Synchronizer)),
	wire.Bind(new(vehicleService.TxManager), new(*tx.Manager)),

	wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
	wire.Bind(new(dispatchService.CourierReader), new(*courierRepo.Repository)),
	wire.Bind(new(dispatchService.PharmacyReader), new(*pharmacyRepo.Repository)),
	wire.Bind(new(dispatchService.Authorizer), new(*access.Policy)),
	wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		serviceSet,
		provideLicenseCheckInterval,

		provideLicenseExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceVehicle), new(*vehicleService.Vehicle)),
		wire.Bind(new(ServicePharmacy), new(*pharmacyService.Pharmacy)),
		wire.Bind(new(ServiceVehicleAssignment), new(*vehicleAssignmentService.Manager)),
		wire.Bind(new(ServicePharmacyAssignment), new(*pharmacyAssignmentService.Manager)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(license_expiry.Service), new(*courierService.Courier)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Dispatch
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-dispatch-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		access.New,
		dispatchService.New,

		wire.Bind(new(dispatchService.Repository), new(*dispatchRepo.Repository)),
		wire.Bind(new(dispatchService.CourierReader), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.PharmacyReader), new(*pharmacyRepo.Repository)),
		wire.Bind(new(dispatchService.Authorizer), new(*access.Policy)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

// provideRetrier повторяет только сериализационные конфликты.
func provideRetrier(cfg *config.Config, log logger.Logger) retrier.Retrier {
	txLog := log.With(logger.NewField("component", "tx"))

	return backoff_adapter.New(retrier.Config{
		InitialInterval: cfg.Tx.RetryInitialInterval,
		MaxInterval:     cfg.Tx.RetryMaxElapsed / 4,
		MaxElapsedTime:  cfg.Tx.RetryMaxElapsed,
		Randomization:   0.5,
		Multiplier:      2,
		ShouldRetry:     tx.IsSerializationFailure,
		OnRetry: func(err error, next time.Duration) {
			metrics.TxRetriesTotal.Inc()
			txLog.With(
				logger.NewField("error", err),
				logger.NewField("next_attempt_in", next.String()),
			).Warn("transaction conflict, retrying")
		},
	})
}

func provideTxManager(pool *pgxpool.Pool, r retrier.Retrier) *tx.Manager {
	return tx.New(pool, r)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideVehicleAssignmentOptions(cfg *config.Config) vehicleAssignmentService.Options {
	return vehicleAssignmentService.Options{
		ReleaseEndsPharmacyAssignment: cfg.Policy.VehicleReleaseEndsPharmacyAssignment,
	}
}

func provideLicenseCheckInterval(cfg *config.Config) LicenseCheckInterval {
	return LicenseCheckInterval(cfg.Tasks.LicenseCheckInterval)
}

func provideLicenseExpiryTask(
	log logger.Logger,
	courierService license_expiry.Service,
	interval LicenseCheckInterval,
) *license_expiry.LicenseExpiry {
	return license_expiry.NewLicenseExpiry(log, courierService, time.Duration(interval))
}

func provideTaskList(
	licenseExpiryTask *license_expiry.LicenseExpiry,
) []background.Task {
	return []background.Task{
		licenseExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
