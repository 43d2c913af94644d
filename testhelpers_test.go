//go:build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lendwise/service-lending/internal/application"
	"github.com/lendwise/service-lending/internal/repository"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB      *gorm.DB
	Cleanup func()
}

// lendingStack holds the wired-up application services under test.
type lendingStack struct {
	Users    *application.UserService
	Items    *application.ItemService
	Bookings *application.BookingService
	Requests *application.RequestService
}

// setupPostgres starts a PostgreSQL testcontainer and returns a connected,
// migrated GORM DB.
func setupPostgres(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_lending",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_lending sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&repository.UserModel{},
		&repository.ItemModel{},
		&repository.BookingModel{},
		&repository.CommentModel{},
		&repository.RequestModel{},
	))

	return &testInfra{
		DB: db,
		Cleanup: func() {
			_ = container.Terminate(context.Background())
		},
	}
}

// setupStack wires repositories and services on top of the test database.
func setupStack(t *testing.T, db *gorm.DB) *lendingStack {
	t.Helper()
	log := zap.NewNop()

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)

	bookings := application.NewBookingService(bookingRepo, itemRepo, userRepo, log)
	return &lendingStack{
		Users:    application.NewUserService(userRepo, log),
		Items:    application.NewItemService(itemRepo, commentRepo, userRepo, bookings, log),
		Bookings: bookings,
		Requests: application.NewRequestService(requestRepo, itemRepo, userRepo, log),
	}
}
