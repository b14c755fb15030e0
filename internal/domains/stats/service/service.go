package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"pms/config"
	"pms/infras/otel"
	bookingModel "pms/internal/domains/booking/model"
	bookingRepository "pms/internal/domains/booking/repository"
	roomModel "pms/internal/domains/room/model"
	roomRepository "pms/internal/domains/room/repository"
	"pms/internal/domains/stats/model/dto"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard = "stats:dashboard"

	percentBase = 100
)

type Stats interface {
	Dashboard(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(bookingRepo bookingRepository.Booking, roomRepo roomRepository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Dashboard aggregates today's operational counters. Occupied rooms are
// counted from in-house bookings, which is exact as long as a room never
// carries two overlapping active bookings.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.Today()
	tomorrow := today.AddDate(0, 0, 1)

	cacheKey := shared.BuildCacheKey(cacheDashboard, today.Format(constant.StayDateFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard stats")

		return res, nil
	}

	res.Date = today.Format(constant.StayDateFormat)

	if res.NewBookings, err = s.bookingRepo.Count(ctx, createdBetween(today, tomorrow)); err != nil {
		return res, fmt.Errorf("failed to count new bookings: %w", err)
	}

	if res.Cancellations, err = s.bookingRepo.Count(ctx, cancelledBetween(today, tomorrow)); err != nil {
		return res, fmt.Errorf("failed to count cancellations: %w", err)
	}

	if res.CheckIns, err = s.bookingRepo.Count(ctx, boundaryOn(bookingModel.FieldCheckIn, today, bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn)); err != nil {
		return res, fmt.Errorf("failed to count check-ins: %w", err)
	}

	if res.CheckOuts, err = s.bookingRepo.Count(ctx, boundaryOn(bookingModel.FieldCheckOut, today, bookingModel.StatusCheckedIn, bookingModel.StatusCheckedOut)); err != nil {
		return res, fmt.Errorf("failed to count check-outs: %w", err)
	}

	if res.OccupiedRooms, err = s.bookingRepo.Count(ctx, inHouseOn(today)); err != nil {
		return res, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	if res.TotalRooms, err = s.roomRepo.Count(ctx, activeRooms()); err != nil {
		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if res.TotalRooms > 0 {
		rate := float64(res.OccupiedRooms) / float64(res.TotalRooms) * percentBase
		res.OccupancyRate = math.Round(rate*percentBase) / percentBase
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

func createdBetween(from, to time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "created_from",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "created_to",
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorLess,
				Value:    to,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func cancelledBetween(from, to time.Time) gDto.FilterGroup {
	group := createdBetween(from, to)
	group.Filters = []any{
		gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingModel.StatusCancelled,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			ArgName:  "modified_from",
			Field:    constant.FieldModifiedAt,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    bookingModel.TableName,
		},
		gDto.Filter{
			ArgName:  "modified_to",
			Field:    constant.FieldModifiedAt,
			Operator: gDto.FilterOperatorLess,
			Value:    to,
			Table:    bookingModel.TableName,
		},
	}

	return group
}

func boundaryOn(field string, day time.Time, statuses ...string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    statuses,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func inHouseOn(day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{bookingModel.StatusConfirmed, bookingModel.StatusCheckedIn},
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "in_house_check_in",
				Field:    bookingModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "in_house_check_out",
				Field:    bookingModel.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    day,
				Table:    bookingModel.TableName,
			},
		},
	}
}

func activeRooms() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	}
}
