package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"charter/config"
	"charter/infras/otel"
	"charter/infras/postgres"
	adminModel "charter/internal/domains/admin/model"
	adminRepository "charter/internal/domains/admin/repository"
	templateModel "charter/internal/domains/template/model"
	templateRepository "charter/internal/domains/template/repository"
	gDto "charter/shared/dto"
	"charter/shared/logger"
	gModel "charter/shared/model"
	"charter/shared/password"
	"charter/shared/timezone"
)

const (
	defaultAdminUsername = "Admin"
	defaultAdminEmail    = "admin@example.com"
	defaultAdminPassword = "admin123"

	seededBy = "seed"
)

// Seeds the default admin account and the two decision templates. Every seed
// is idempotent: existing rows are left alone.
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	ot := otel.New(cfg)

	ctx := context.Background()

	seedAdmin(ctx, adminRepository.New(db, ot))
	seedTemplates(ctx, templateRepository.New(db, ot))
}

func seedAdmin(ctx context.Context, repo adminRepository.Admin) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    adminModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    defaultAdminEmail,
				Table:    adminModel.TableName,
			},
		},
	}

	exists, err := repo.Exist(ctx, filter)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check for default admin")
	}

	if exists {
		log.Info().Str("email", defaultAdminEmail).Msg("Default admin already exists")

		return
	}

	hashed, err := password.Hash(defaultAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash default admin password")
	}

	admin := adminModel.Admin{
		ID:       uuid.NewString(),
		Username: defaultAdminUsername,
		Email:    defaultAdminEmail,
		Password: hashed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  seededBy,
			ModifiedBy: seededBy,
		},
	}

	if err := repo.Insert(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("failed to create default admin")
	}

	log.Info().Str("email", defaultAdminEmail).Msg("Default admin created")
}

func seedTemplates(ctx context.Context, repo templateRepository.Template) {
	templates := []templateModel.EmailTemplate{
		{
			ID:      uuid.NewString(),
			Name:    "Default acceptance notice",
			Type:    templateModel.TypeAccepted,
			Subject: "Your Trip has been Accepted",
			Body: "Hello {{userName}},\n\nYour trip from {{pickup}} to {{destination}} is CONFIRMED.\n\n" +
				"Departure: {{departureDate}} {{departureTime}}\nReturn: {{returnDate}} {{returnTime}}\n\nThanks for booking with us!",
		},
		{
			ID:      uuid.NewString(),
			Name:    "Default rejection notice",
			Type:    templateModel.TypeRejected,
			Subject: "Your Trip has been Rejected",
			Body: "Hello {{userName}},\n\nUnfortunately your trip from {{pickup}} to {{destination}} has been REJECTED.\n\n" +
				"Please contact support for more info.",
		},
	}

	for _, tpl := range templates {
		filter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    templateModel.FieldType,
					Operator: gDto.FilterOperatorEq,
					Value:    tpl.Type,
					Table:    templateModel.TableName,
				},
			},
		}

		exists, err := repo.Exist(ctx, filter)
		if err != nil {
			log.Fatal().Err(err).Str("type", tpl.Type).Msg("failed to check for default template")
		}

		if exists {
			log.Info().Str("type", tpl.Type).Msg("Default template already exists")

			continue
		}

		tpl.Metadata = gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  seededBy,
			ModifiedBy: seededBy,
		}

		if err := repo.Insert(ctx, tpl); err != nil {
			log.Fatal().Err(err).Str("type", tpl.Type).Msg("failed to create default template")
		}

		log.Info().Str("type", tpl.Type).Msg("Default template created")
	}
}
