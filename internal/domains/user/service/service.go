package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"wander/config"
	"wander/infras/otel"
	"wander/infras/postgres"
	"wander/internal/domains/user/model"
	"wander/internal/domains/user/model/dto"
	"wander/internal/domains/user/repository"
	"wander/shared"
	"wander/shared/constant"
	"wander/shared/failure"

	gDto "wander/shared/dto"
)

type User interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (dto.UserResponse, bool, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Table:    model.TableName,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
			},
		},
	}
}

// Register is idempotent on email. Registering an address that already
// exists returns the existing user instead of an error, and a
// concurrent insert losing the unique-index race resolves the same way.
// The bool reports whether a new user was created, so the handler can
// answer 201 for a fresh registration and 200 for a known email.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterUserRequest) (res dto.UserResponse, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user by email")

		return res, false, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if existing.ID != constant.Empty {
		res.FromModel(existing)

		return res, false, nil
	}

	user := req.ToModel()

	err = s.repo.Insert(ctx, user)
	if postgres.IsUniqueViolation(err) {
		existing, getErr := s.repo.Get(ctx, emailFilter(req.Email))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to look up user after duplicate insert")

			return res, false, fmt.Errorf("failed to look up user after duplicate insert: %w", getErr)
		}

		res.FromModel(existing)

		return res, false, nil
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to register user")

		return res, false, fmt.Errorf("failed to register user: %w", err)
	}

	res.FromModel(user)

	return res, true, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}
