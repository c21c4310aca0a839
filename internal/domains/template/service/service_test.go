package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charter/config"
	otelMocks "charter/infras/otel/mocks"
	cacheMocks "charter/shared/cache/mocks"
	"charter/shared/failure"

	"charter/internal/domains/template/mocks"
	"charter/internal/domains/template/model"
	"charter/internal/domains/template/model/dto"
	"charter/internal/domains/template/service"
)

type templateFixture struct {
	repo  *mocks.MockTemplate
	cache *cacheMocks.MockRedisCache
	svc   service.Template
}

func newTemplateFixture(t *testing.T) templateFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := mocks.NewMockTemplate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	// Cache writes and invalidations run in fire-and-forget goroutines.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(repo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return templateFixture{repo: repo, cache: mockCache, svc: svc}
}

func TestTemplateCreate(t *testing.T) {
	req := dto.CreateTemplateRequest{
		Name:    "Acceptance notice",
		Type:    model.TypeAccepted,
		Subject: "Your quote is {{status}}",
		Body:    "Hi {{userName}}",
	}

	t.Run("success", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		fix.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		res, err := fix.svc.Create(context.Background(), req, "admin@example.com")

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, req.Type, res.Type)
		assert.Equal(t, req.Subject, res.Subject)
	})

	t.Run("duplicate type conflicts", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := fix.svc.Create(context.Background(), req, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 409))
	})
}

func TestTemplateGet(t *testing.T) {
	t.Run("missing template is not found", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.EmailTemplate{}, nil)

		_, err := fix.svc.Get(context.Background(), "missing-id")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("found", func(t *testing.T) {
		fix := newTemplateFixture(t)

		stored := model.EmailTemplate{ID: "tpl-1", Name: "Acceptance", Type: model.TypeAccepted}

		fix.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := fix.svc.Get(context.Background(), "tpl-1")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, res.ID)
	})
}

func TestTemplateUpdate(t *testing.T) {
	t.Run("missing template is not found", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := fix.svc.Update(context.Background(), "missing-id", dto.UpdateTemplateRequest{Name: "new"}, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("success", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		fix.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := fix.svc.Update(context.Background(), "tpl-1", dto.UpdateTemplateRequest{Subject: "new subject"}, "admin@example.com")

		require.NoError(t, err)
	})
}

func TestTemplateResolveByStatus(t *testing.T) {
	t.Run("resolves the configured template", func(t *testing.T) {
		fix := newTemplateFixture(t)

		stored := model.EmailTemplate{ID: "tpl-1", Type: model.TypeAccepted}

		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := fix.svc.ResolveByStatus(context.Background(), model.TypeAccepted)

		require.NoError(t, err)
		assert.Equal(t, stored.ID, res.ID)
	})

	t.Run("no template configured", func(t *testing.T) {
		fix := newTemplateFixture(t)

		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.EmailTemplate{}, nil)

		_, err := fix.svc.ResolveByStatus(context.Background(), model.TypeRejected)

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}
