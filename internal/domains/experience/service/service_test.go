package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"wander/config"
	"wander/infras/otel/mocks"
	"wander/internal/domains/experience/model"
	"wander/internal/domains/experience/model/dto"
	"wander/internal/domains/experience/service"
	"wander/shared/failure"

	s3Mocks "wander/infras/s3/mocks"
	expMocks "wander/internal/domains/experience/mocks"
	cacheMocks "wander/shared/cache/mocks"
	gDto "wander/shared/dto"
)

var errCacheMiss = errors.New("cache miss")

func TestExperienceService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := expMocks.NewMockExperience(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "wander-assets"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	tests := []struct {
		name      string
		req       dto.CreateExperienceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation with hosted image URL",
			req: dto.CreateExperienceRequest{
				Title:    "Sunrise Hike",
				Location: "Mount Batur",
				Price:    45,
				Image:    "https://cdn.example.com/hike.jpg",
				Category: "adventure",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "base64 image is uploaded to S3",
			req: dto.CreateExperienceRequest{
				Title:    "Temple Tour",
				Location: "Ubud",
				Price:    30,
				Image:    "data:image/png;base64,aGVsbG8=",
				Category: "cultural",
			},
			setupMock: func() {
				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "wander-assets", model.EntityName, gomock.Any(), "image/png", []byte("hello")).
					Return("https://cdn.example.com/experience/temple.png", nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "malformed data URI",
			req: dto.CreateExperienceRequest{
				Title:    "Temple Tour",
				Location: "Ubud",
				Price:    30,
				Image:    "data:image/png;base64,!!!not-base64!!!",
				Category: "cultural",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateExperienceRequest{
				Title:    "Snorkeling Trip",
				Location: "Nusa Penida",
				Price:    60,
				Category: "water-sports",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExperienceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := expMocks.NewMockExperience(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Experience{ID: "exp-1", Title: "Sunrise Hike", Category: "adventure"}, nil)

		res, err := svc.Get(context.Background(), "exp-1")

		assert.NoError(t, err)
		assert.Equal(t, "exp-1", res.ID)
		assert.Equal(t, "Sunrise Hike", res.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss)
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Experience{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestExperienceService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := expMocks.NewMockExperience(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	t.Run("successful get all", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Experience{
				{ID: "exp-1", Title: "Sunrise Hike"},
				{ID: "exp-2", Title: "Temple Tour"},
			}, nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Experiences, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("repository error", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errCacheMiss).
			Times(2)
		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestExperienceService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := expMocks.NewMockExperience(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	t.Run("empty update request", func(t *testing.T) {
		err := svc.Update(context.Background(), dto.UpdateExperienceRequest{}, "exp-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("experience not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateExperienceRequest{Title: "New Title"}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(context.Background(), dto.UpdateExperienceRequest{Title: "New Title"}, "exp-1")

		assert.NoError(t, err)
	})
}
