package main

import (
	"context"

	"pms/config"
	"pms/infras/otel"
	"pms/infras/postgres"
	extraModel "pms/internal/domains/extra/model"
	extraRepository "pms/internal/domains/extra/repository"
	roomModel "pms/internal/domains/room/model"
	roomRepository "pms/internal/domains/room/repository"
	gDto "pms/shared/dto"
	"pms/shared/logger"
	gModel "pms/shared/model"
	"pms/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const seedUser = "seed"

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	tracer := otel.New(cfg)

	ctx := context.Background()

	roomRepo := roomRepository.New(db, tracer)
	extraRepo := extraRepository.New(db, tracer)

	for _, room := range demoRooms() {
		exist, err := roomRepo.Exist(ctx, filterByName(room.Name, roomModel.FieldName, roomModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Str("name", room.Name).Msg("Failed to check room")
		}

		if exist {
			log.Info().Str("name", room.Name).Msg("Room already present, skipping")

			continue
		}

		if err := roomRepo.Insert(ctx, room); err != nil {
			log.Fatal().Err(err).Str("name", room.Name).Msg("Failed to seed room")
		}

		log.Info().Str("name", room.Name).Msg("Seeded room")
	}

	for _, extra := range demoExtras() {
		exist, err := extraRepo.Exist(ctx, filterByName(extra.Name, extraModel.FieldName, extraModel.TableName))
		if err != nil {
			log.Fatal().Err(err).Str("name", extra.Name).Msg("Failed to check extra")
		}

		if exist {
			log.Info().Str("name", extra.Name).Msg("Extra already present, skipping")

			continue
		}

		if err := extraRepo.Insert(ctx, extra); err != nil {
			log.Fatal().Err(err).Str("name", extra.Name).Msg("Failed to seed extra")
		}

		log.Info().Str("name", extra.Name).Msg("Seeded extra")
	}

	log.Info().Msg("Demo catalog seeded")
}

func filterByName(name, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    table,
			},
		},
	}
}

func seedMetadata() gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  seedUser,
		ModifiedBy: seedUser,
	}
}

func demoRooms() []roomModel.Room {
	return []roomModel.Room{
		{
			ID:           uuid.NewString(),
			Name:         "Habitación Estándar",
			Type:         "standard",
			Description:  "Habitación cómoda con todas las comodidades básicas",
			NightlyPrice: 100,
			MaxAdults:    2,
			MaxChildren:  1,
			SizeLabel:    "25m²",
			Amenities:    pq.StringArray{"TV", "WiFi", "Aire acondicionado", "Baño privado"},
			Images:       pq.StringArray{"/rooms/standard.jpg"},
			Active:       true,
			Metadata:     seedMetadata(),
		},
		{
			ID:           uuid.NewString(),
			Name:         "Suite Junior",
			Type:         "suite",
			Description:  "Suite espaciosa con sala de estar y vista a la ciudad",
			NightlyPrice: 180,
			MaxAdults:    2,
			MaxChildren:  2,
			SizeLabel:    "35m²",
			Amenities:    pq.StringArray{"TV", "WiFi", "Minibar", "Sala de estar", "Vista ciudad"},
			Images:       pq.StringArray{"/rooms/junior-suite.jpg"},
			Active:       true,
			Metadata:     seedMetadata(),
		},
		{
			ID:           uuid.NewString(),
			Name:         "Suite Familiar",
			Type:         "family",
			Description:  "Suite amplia ideal para familias",
			NightlyPrice: 250,
			MaxAdults:    3,
			MaxChildren:  3,
			SizeLabel:    "45m²",
			Amenities:    pq.StringArray{"TV", "WiFi", "Cocina", "Sala de estar", "Dos baños"},
			Images:       pq.StringArray{"/rooms/family-suite.jpg"},
			Active:       true,
			Metadata:     seedMetadata(),
		},
	}
}

func demoExtras() []extraModel.Extra {
	return []extraModel.Extra{
		{
			ID:          uuid.NewString(),
			Name:        "Airport Transfer",
			Description: "Private transfer between the airport and the hotel",
			Price:       45,
			BillingMode: extraModel.BillingModeOncePerStay,
			Category:    "transport",
			Active:      true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Premium Breakfast",
			Description: "Full breakfast buffet served every morning",
			Price:       15,
			BillingMode: extraModel.BillingModePerNight,
			Category:    "food",
			Active:      true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "High-Speed Internet",
			Description: "Dedicated high-bandwidth connection for the stay",
			Price:       10,
			BillingMode: extraModel.BillingModePerNight,
			Category:    "connectivity",
			Active:      true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Laundry Service",
			Description: "Wash and fold service with next-day delivery",
			Price:       25,
			BillingMode: extraModel.BillingModeOncePerStay,
			Category:    "service",
			Active:      true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Romantic Pack",
			Description: "Champagne, flowers and room decoration on arrival",
			Price:       75,
			BillingMode: extraModel.BillingModeOncePerStay,
			Category:    "experience",
			Active:      true,
			Metadata:    seedMetadata(),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Minibar Package",
			Description: "Fully stocked minibar included in the stay",
			Price:       40,
			BillingMode: extraModel.BillingModeOncePerStay,
			Category:    "food",
			Active:      true,
			Metadata:    seedMetadata(),
		},
	}
}
