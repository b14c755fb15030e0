package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"pms/infras/otel"
	"pms/infras/postgres"
	"pms/internal/domains/booking/model"
	gDto "pms/shared/dto"
	gRepo "pms/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateChecked(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type bookingRepositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingRepositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type BookingExtra interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.BookingExtra) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingExtra, error)
}

type bookingExtraRepositoryImpl struct {
	gRepo.Repository[model.BookingExtra]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookingExtra(db *postgres.Connection, otel otel.Otel) BookingExtra {
	return &bookingExtraRepositoryImpl{
		Repository: gRepo.NewRepository[model.BookingExtra](model.ExtraEntityName, model.ExtraTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type paymentRepositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentRepositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Timeline interface {
	Insert(ctx context.Context, model model.TimelineItem) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.TimelineItem) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimelineItem, error)
}

type timelineRepositoryImpl struct {
	gRepo.Repository[model.TimelineItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTimeline(db *postgres.Connection, otel otel.Otel) Timeline {
	return &timelineRepositoryImpl{
		Repository: gRepo.NewRepository[model.TimelineItem](model.TimelineEntityName, model.TimelineTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
