package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wander/config"
	"wander/infras/otel/mocks"
	"wander/internal/domains/user/model"
	"wander/internal/domains/user/model/dto"
	"wander/internal/domains/user/service"
	"wander/shared/failure"

	userMocks "wander/internal/domains/user/mocks"

	gDto "wander/shared/dto"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	req := dto.RegisterUserRequest{
		FullName:  "Ayu Lestari",
		Email:     "ayu@example.com",
		PromoCode: "SAVE10",
	}

	t.Run("new user is created", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		res, created, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "ayu@example.com", res.Email)
		assert.Equal(t, "SAVE10", res.PromoCode)
	})

	t.Run("existing email returns existing user, not created", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", FullName: "Ayu Lestari", Email: "ayu@example.com"}, nil)

		res, created, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "user-1", res.ID)
	})

	t.Run("unique violation race resolves to existing user", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", Email: "ayu@example.com"}, nil)

		res, created, err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "user-1", res.ID)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, _, err := svc.Register(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	t.Run("returns users with list metadata", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), filter).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), params, filter).
			Return([]model.User{
				{ID: "user-1", FullName: "Ayu Lestari", Email: "ayu@example.com"},
				{ID: "user-2", FullName: "Budi Santoso", Email: "budi@example.com"},
			}, nil)

		res, err := svc.GetAll(context.Background(), params, filter)

		assert.NoError(t, err)
		assert.Len(t, res.Users, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "budi@example.com", res.Users[1].Email)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Count(gomock.Any(), filter).
			Return(0, errors.New("db down"))

		_, err := svc.GetAll(context.Background(), params, filter)

		assert.Error(t, err)
	})
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", FullName: "Ayu Lestari"}, nil)

		res, err := svc.Get(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "Ayu Lestari", res.FullName)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
