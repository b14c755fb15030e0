package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"pms/config"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/internal/domains/booking/engine"
	"pms/internal/domains/booking/model"
	"pms/internal/domains/booking/model/dto"
	"pms/internal/domains/booking/repository"
	extraModel "pms/internal/domains/extra/model"
	extraRepository "pms/internal/domains/extra/repository"
	guestModel "pms/internal/domains/guest/model"
	guestRepository "pms/internal/domains/guest/repository"
	roomModel "pms/internal/domains/room/model"
	roomDto "pms/internal/domains/room/model/dto"
	roomRepository "pms/internal/domains/room/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	// totalTolerance absorbs float representation noise when comparing a
	// client-claimed total against the recomputed one.
	totalTolerance = 0.01
)

type Booking interface {
	SearchAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailableRoomsResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingDetailResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) error
	AddPayment(ctx context.Context, req dto.CreatePaymentRequest, bookingID string) error
	AddTimelineItem(ctx context.Context, req dto.CreateTimelineItemRequest, bookingID string) error
}

type serviceImpl struct {
	repo      repository.Booking
	extraLine repository.BookingExtra
	payment   repository.Payment
	timeline  repository.Timeline
	roomRepo  roomRepository.Room
	guestRepo guestRepository.Guest
	extraRepo extraRepository.Extra
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(
	repo repository.Booking,
	extraLine repository.BookingExtra,
	payment repository.Payment,
	timeline repository.Timeline,
	roomRepo roomRepository.Room,
	guestRepo guestRepository.Guest,
	extraRepo extraRepository.Extra,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafkaClient kafka.Client,
) Booking {
	return &serviceImpl{
		repo:      repo,
		extraLine: extraLine,
		payment:   payment,
		timeline:  timeline,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		extraRepo: extraRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafkaClient,
	}
}

// overlapFilter matches non-cancelled bookings on the room whose half-open
// range intersects [checkIn, checkOut).
func overlapFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_out",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_in",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
		},
	}
}

// rangeFilter matches non-cancelled bookings of any room intersecting the
// requested range, used to build the availability snapshot.
func rangeFilter(checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    model.StatusCancelled,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_out",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_check_in",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
		},
	}
}

func activeRoomsFilter() gDto.FilterGroup {
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

func (s *serviceImpl) SearchAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailableRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Range()
	if err != nil {
		return res, err
	}

	nights, err := engine.Nights(checkIn, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{}, activeRoomsFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to load room catalog")

		return res, fmt.Errorf("failed to load room catalog: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, rangeFilter(checkIn, checkOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for availability")

		return res, fmt.Errorf("failed to load bookings for availability: %w", err)
	}

	available, err := engine.AvailableRooms(rooms, bookings, checkIn, checkOut, req.Adults, req.Children)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	res.Nights = nights
	res.Rooms = make([]roomDto.RoomResponse, len(available))

	for i, room := range available {
		res.Rooms[i].FromModel(room)
	}

	scope.SetAttribute("available_rooms", len(res.Rooms))

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Range()
	if err != nil {
		return res, err
	}

	nights, err := engine.Nights(checkIn, checkOut)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	room, err := s.loadRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if err = engine.FitsCapacity(room, req.Adults, req.Children); err != nil {
		return res, failure.UnprocessableEntity("room capacity exceeded") // nolint:wrapcheck
	}

	if err = s.checkGuest(ctx, req.GuestID); err != nil {
		return res, err
	}

	catalog, err := s.loadCatalog(ctx, req)
	if err != nil {
		return res, err
	}

	selected := req.SelectedExtras()

	total, err := engine.BookingTotal(room, nights, selected, catalog)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownExtra) {
			return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to compute booking total: %w", err)
	}

	// Totals are authoritative server-side; a client-claimed total is only
	// accepted when it matches the recomputed one.
	if req.TotalPrice != nil && math.Abs(*req.TotalPrice-total) > totalTolerance {
		return res, failure.UnprocessableEntity(fmt.Sprintf("total_price mismatch: expected %.2f", total)) // nolint:wrapcheck
	}

	booking := req.ToModel(user, checkIn, checkOut, total)

	err = s.createInTx(ctx, booking, catalog, req, user)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, booking.ID)
		s.publishEvent(c, dto.EventBookingCreated, booking)
	}()

	scope.AddEvent("Booking created for room " + booking.RoomID)

	return res, nil
}

// createInTx holds a row lock on the room while re-checking for conflicting
// bookings, so two concurrent creations of the same room serialize and the
// loser sees the winner's row.
func (s *serviceImpl) createInTx(ctx context.Context, booking model.Booking, catalog []extraModel.Extra, req dto.CreateBookingRequest, user string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".createInTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	_, err = s.roomRepo.GetLockedTx(ctx, tx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return err
	}

	conflicts, err := s.repo.GetAllTx(ctx, tx, overlapFilter(booking.RoomID, booking.CheckIn, booking.CheckOut))
	if err != nil {
		return err
	}

	for _, existing := range conflicts {
		if engine.Overlaps(existing.CheckIn, existing.CheckOut, booking.CheckIn, booking.CheckOut) {
			return failure.Conflict("room is already booked for the requested dates") // nolint:wrapcheck
		}
	}

	if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = s.insertExtraLinesTx(ctx, tx, booking, catalog, req); err != nil {
		return err
	}

	item := model.TimelineItem{
		ID:          uuid.NewString(),
		BookingID:   booking.ID,
		Type:        model.TimelineTypeStatusChange,
		Description: "booking created with status " + booking.Status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.timeline.InsertTx(ctx, tx, item); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking transaction")

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (s *serviceImpl) insertExtraLinesTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking, catalog []extraModel.Extra, req dto.CreateBookingRequest) error {
	byID := make(map[string]extraModel.Extra, len(catalog))
	for _, extra := range catalog {
		byID[extra.ID] = extra
	}

	lines := []model.BookingExtra{}

	for _, selection := range req.Extras {
		if selection.Quantity <= 0 {
			continue
		}

		extra := byID[selection.ExtraID]

		lines = append(lines, model.BookingExtra{
			ID:          uuid.NewString(),
			BookingID:   booking.ID,
			ExtraID:     extra.ID,
			Quantity:    selection.Quantity,
			UnitPrice:   extra.Price,
			BillingMode: extra.BillingMode,
			Metadata:    booking.Metadata,
		})
	}

	if len(lines) == 0 {
		return nil
	}

	return s.extraLine.InsertBulkTx(ctx, tx, lines)
}

func (s *serviceImpl) loadRoom(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Active {
		return room, failure.UnprocessableEntity("room is not bookable") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) checkGuest(ctx context.Context, id string) error {
	exist, err := s.guestRepo.Exist(ctx, shared.FilterByID(id, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exist {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) loadCatalog(ctx context.Context, req dto.CreateBookingRequest) ([]extraModel.Extra, error) {
	ids := []string{}

	for _, selection := range req.Extras {
		if selection.Quantity > 0 {
			ids = append(ids, selection.ExtraID)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    extraModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    ids,
				Table:    extraModel.TableName,
			},
			gDto.Filter{
				Field:    extraModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    extraModel.TableName,
			},
		},
	}

	catalog, err := s.extraRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load extras catalog")

		return nil, fmt.Errorf("failed to load extras catalog: %w", err)
	}

	return catalog, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	byBooking := func(table, field string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    field,
					Operator: gDto.FilterOperatorEq,
					Value:    id,
					Table:    table,
				},
			},
		}
	}

	ordering := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: "ASC"}

	extras, err := s.extraLine.GetAll(ctx, gDto.QueryParams{}, byBooking(model.ExtraTableName, model.FieldExtraBookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking extras")

		return res, fmt.Errorf("failed to get booking extras: %w", err)
	}

	payments, err := s.payment.GetAll(ctx, ordering, byBooking(model.PaymentTableName, model.FieldPaymentBookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking payments")

		return res, fmt.Errorf("failed to get booking payments: %w", err)
	}

	timeline, err := s.timeline.GetAll(ctx, ordering, byBooking(model.TimelineTableName, model.FieldTimelineBookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking timeline")

		return res, fmt.Errorf("failed to get booking timeline: %w", err)
	}

	res.FromModels(booking, extras, payments, timeline)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = engine.Transition(booking.Status, req.Status); err != nil {
		return failure.UnprocessableEntity(err.Error()) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	// The write is conditional on the status read above, so a transition
	// persisted by a concurrent request cannot be overwritten.
	statusFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "status_from",
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    booking.Status,
				Table:    model.TableName,
			},
		},
	}

	rows, err := s.repo.UpdateChecked(ctx, updatedFields, statusFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	if rows == 0 {
		log.Error().Str("from", booking.Status).Str("to", req.Status).Msg("booking status changed concurrently")

		return failure.UnprocessableEntity(fmt.Sprintf("booking is no longer %s", booking.Status)) // nolint:wrapcheck
	}

	item := model.TimelineItem{
		ID:          uuid.NewString(),
		BookingID:   id,
		Type:        model.TimelineTypeStatusChange,
		Description: fmt.Sprintf("status changed from %s to %s", booking.Status, req.Status),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.timeline.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to record status change in timeline")
	}

	booking.Status = req.Status

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)
		s.publishEvent(c, dto.EventBookingStatusChanged, booking)
	}()

	scope.AddEvent("Booking " + id + " moved to " + req.Status)

	return nil
}

func (s *serviceImpl) UpdateNotes(ctx context.Context, req dto.UpdateNotesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateNotes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getBooking(ctx, id); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldNotes:         req.Notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking notes")

		return fmt.Errorf("failed to update booking notes: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

func (s *serviceImpl) AddPayment(ctx context.Context, req dto.CreatePaymentRequest, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	exist, err := s.payment.Exist(ctx, shared.FilterByID(bookingID, model.FieldPaymentBookingID, model.PaymentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing payment")

		return fmt.Errorf("failed to check existing payment: %w", err)
	}

	if exist {
		return failure.Conflict("payment already recorded for booking") // nolint:wrapcheck
	}

	if math.Abs(req.Amount-booking.TotalPrice) > totalTolerance {
		return failure.UnprocessableEntity(fmt.Sprintf("payment amount must equal booking total %.2f", booking.TotalPrice)) // nolint:wrapcheck
	}

	if err := s.payment.Insert(ctx, req.ToModel(user, bookingID)); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldPaidAmount:    req.Amount,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(bookingID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update paid amount")

		return fmt.Errorf("failed to update paid amount: %w", err)
	}

	item := model.TimelineItem{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Type:        model.TimelineTypePayment,
		Description: fmt.Sprintf("payment of %.2f received via %s", req.Amount, req.Method),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.timeline.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to record payment in timeline")
	}

	booking.PaidAmount = req.Amount

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, bookingID)
		s.publishEvent(c, dto.EventBookingPaymentAdded, booking)
	}()

	return nil
}

func (s *serviceImpl) AddTimelineItem(ctx context.Context, req dto.CreateTimelineItemRequest, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddTimelineItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getBooking(ctx, bookingID); err != nil {
		return err
	}

	if err := s.timeline.Insert(ctx, req.ToModel(user, bookingID)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, bookingID)
	}()

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	payload := dto.BookingEvent{
		Event:      event,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		GuestID:    booking.GuestID,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Now(),
	}

	message := kafka.Message{Key: booking.ID, Value: payload}

	if err := s.kafka.SendMessages(ctx, constant.KafkaTopicBookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}
