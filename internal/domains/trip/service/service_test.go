package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charter/config"
	otelMocks "charter/infras/otel/mocks"
	"charter/internal/domains/trip/mocks"
	"charter/internal/domains/trip/model"
	"charter/internal/domains/trip/model/dto"
	"charter/internal/domains/trip/service"
	cacheMocks "charter/shared/cache/mocks"
	gDto "charter/shared/dto"
	"charter/shared/failure"
)

type tripFixture struct {
	repo       *mocks.MockTrip
	stopRepo   *mocks.MockStop
	timingRepo *mocks.MockTiming
	userRepo   *mocks.MockUser
	cache      *cacheMocks.MockRedisCache
	svc        service.Trip
}

func newTripFixture(t *testing.T) tripFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	fix := tripFixture{
		repo:       mocks.NewMockTrip(ctrl),
		stopRepo:   mocks.NewMockStop(ctrl),
		timingRepo: mocks.NewMockTiming(ctrl),
		userRepo:   mocks.NewMockUser(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache writes run in fire-and-forget goroutines.
	fix.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fix.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	fix.svc = service.New(fix.repo, fix.stopRepo, fix.timingRepo, fix.userRepo, &config.Config{}, fix.cache, otelMocks.NewOtel())

	return fix
}

func sampleTrip() model.Trip {
	return model.Trip{
		ID:                  "trip-1",
		TripType:            model.TripTypeReturn,
		PickupLocation:      "Hamburg",
		DestinationLocation: "Berlin",
		NumberOfPeople:      30,
		Status:              model.StatusPending,
	}
}

func TestTripDetail(t *testing.T) {
	t.Run("joins stops timing and user", func(t *testing.T) {
		fix := newTripFixture(t)

		trip := sampleTrip()
		goingStops := []model.Stop{{ID: "stop-1", TripID: trip.ID, Location: "Bremen", StopType: model.StopTypeGoing}}
		returnStops := []model.Stop{{ID: "stop-2", TripID: trip.ID, Location: "Potsdam", StopType: model.StopTypeReturn}}
		timing := model.TripTiming{ID: "timing-1", TripID: trip.ID, DepartureDate: "2026-09-12"}
		user := model.UserDetails{ID: "user-1", TripID: trip.ID, FullName: "Jane Doe"}

		fix.stopRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), stopTypeMatcher{model.StopTypeGoing}).Return(goingStops, nil)
		fix.stopRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), stopTypeMatcher{model.StopTypeReturn}).Return(returnStops, nil)
		fix.timingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(timing, nil)
		fix.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		detailed, err := fix.svc.Detail(context.Background(), trip)

		require.NoError(t, err)
		assert.Equal(t, trip, detailed.Trip)
		assert.Equal(t, goingStops, detailed.GoingStops)
		assert.Equal(t, returnStops, detailed.ReturnStops)
		require.NotNil(t, detailed.Timing)
		assert.Equal(t, timing.ID, detailed.Timing.ID)
		require.NotNil(t, detailed.User)
		assert.Equal(t, user.ID, detailed.User.ID)
	})

	t.Run("missing related rows come back empty", func(t *testing.T) {
		fix := newTripFixture(t)

		trip := sampleTrip()

		fix.stopRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		fix.timingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripTiming{}, nil)
		fix.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetails{}, nil)

		detailed, err := fix.svc.Detail(context.Background(), trip)

		require.NoError(t, err)
		assert.Empty(t, detailed.GoingStops)
		assert.Empty(t, detailed.ReturnStops)
		assert.Nil(t, detailed.Timing)
		assert.Nil(t, detailed.User)
	})
}

func TestTripGet(t *testing.T) {
	t.Run("absent trip is not found", func(t *testing.T) {
		fix := newTripFixture(t)

		fix.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Trip{}, nil)

		_, err := fix.svc.Get(context.Background(), "missing-id")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("found trip is aggregated", func(t *testing.T) {
		fix := newTripFixture(t)

		trip := sampleTrip()

		fix.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		fix.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(trip, nil)
		fix.stopRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
		fix.timingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripTiming{}, nil)
		fix.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetails{}, nil)

		res, err := fix.svc.Get(context.Background(), trip.ID)

		require.NoError(t, err)
		assert.Equal(t, trip.ID, res.ID)
	})
}

func TestTripGetAll(t *testing.T) {
	t.Run("broken aggregation degrades to the bare trip", func(t *testing.T) {
		fix := newTripFixture(t)

		trip := sampleTrip()

		fix.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).Times(2)
		fix.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		fix.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Trip{trip}, nil)
		fix.stopRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError).AnyTimes()
		fix.timingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripTiming{}, nil).AnyTimes()
		fix.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.UserDetails{}, nil).AnyTimes()

		res, err := fix.svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
		require.Len(t, res.Leads, 1)
		assert.Equal(t, trip.ID, res.Leads[0].ID)
		assert.Empty(t, res.Leads[0].GoingStops)
	})
}

func TestTripSubmit(t *testing.T) {
	t.Run("duplicate submitter email is rejected", func(t *testing.T) {
		fix := newTripFixture(t)

		fix.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := fix.svc.Submit(context.Background(), submitRequest())

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 400))
	})
}

func submitRequest() dto.CreateTripRequest {
	return dto.CreateTripRequest{
		TripType:            model.TripTypeOneWay,
		PickupLocation:      "Hamburg",
		DestinationLocation: "Berlin",
		NumberOfPeople:      12,
		User: dto.UserDetailsRequest{
			FullName:              "Jane Doe",
			PhoneNumber:           "+4915112345678",
			Email:                 "jane@example.com",
			Password:              "secret-pass",
			ConfirmedDetails:      true,
			AgreedToPrivacyPolicy: true,
		},
	}
}

// stopTypeMatcher matches the stop filter for one stop type.
type stopTypeMatcher struct {
	stopType string
}

func (m stopTypeMatcher) Matches(x any) bool {
	group, ok := x.(gDto.FilterGroup)
	if !ok {
		return false
	}

	for _, raw := range group.Filters {
		filter, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		if filter.Field == model.StopFieldStopType && filter.Value == m.stopType {
			return true
		}
	}

	return false
}

func (m stopTypeMatcher) String() string {
	return "filters stops of type " + m.stopType
}
