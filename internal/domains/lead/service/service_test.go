package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charter/config"
	otelMocks "charter/infras/otel/mocks"
	"charter/internal/domains/lead/service"
	templateModel "charter/internal/domains/template/model"
	templateMocks "charter/internal/domains/template/service/mocks"
	tripMocks "charter/internal/domains/trip/mocks"
	tripModel "charter/internal/domains/trip/model"
	tripServiceMocks "charter/internal/domains/trip/service/mocks"
	"charter/internal/notification"
	notificationMocks "charter/internal/notification/mocks"
	cacheMocks "charter/shared/cache/mocks"
	"charter/shared/failure"
)

const testTripID = "trip-1"

type leadFixture struct {
	tripRepo    *tripMocks.MockTrip
	tripSvc     *tripServiceMocks.MockTrip
	templateSvc *templateMocks.MockTemplate
	whatsapp    *notificationMocks.MockSink
	email       *notificationMocks.MockSink
	svc         service.Lead
}

func newLeadFixture(t *testing.T) leadFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	fix := leadFixture{
		tripRepo:    tripMocks.NewMockTrip(ctrl),
		tripSvc:     tripServiceMocks.NewMockTrip(ctrl),
		templateSvc: templateMocks.NewMockTemplate(ctrl),
		whatsapp:    notificationMocks.NewMockSink(ctrl),
		email:       notificationMocks.NewMockSink(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	fix.svc = service.New(
		fix.tripRepo,
		fix.tripSvc,
		fix.templateSvc,
		fix.whatsapp,
		fix.email,
		&config.Config{},
		mockCache,
		otelMocks.NewOtel(),
	)

	return fix
}

func pendingTrip() tripModel.Trip {
	return tripModel.Trip{
		ID:                  testTripID,
		TripType:            tripModel.TripTypeOneWay,
		PickupLocation:      "Hamburg",
		DestinationLocation: "Berlin",
		NumberOfPeople:      20,
		Status:              tripModel.StatusPending,
	}
}

func detailedWith(user *tripModel.UserDetails) tripModel.DetailedTrip {
	return tripModel.DetailedTrip{Trip: pendingTrip(), User: user}
}

func acceptedTemplate() templateModel.EmailTemplate {
	return templateModel.EmailTemplate{
		ID:      "tpl-1",
		Type:    templateModel.TypeAccepted,
		Subject: "Quote {{status}}",
		Body:    "Hi {{userName}}, your quote is {{status}}.",
	}
}

func TestLeadTransition(t *testing.T) {
	contact := &tripModel.UserDetails{
		ID:          "user-1",
		TripID:      testTripID,
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		PhoneNumber: "+4915112345678",
	}

	t.Run("accepts a pending lead and notifies both channels", func(t *testing.T) {
		fix := newLeadFixture(t)

		accepted := pendingTrip()
		accepted.Status = tripModel.StatusAccepted

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		fix.tripSvc.EXPECT().Detail(gomock.Any(), accepted).Return(detailedWith(contact), nil)
		fix.templateSvc.EXPECT().ResolveByStatus(gomock.Any(), tripModel.StatusAccepted).Return(acceptedTemplate(), nil)

		fix.whatsapp.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.ChannelWhatsApp, msg.Channel)
				assert.Equal(t, contact.PhoneNumber, msg.Destination)
				assert.Equal(t, "Hi Jane Doe, your quote is Accepted.", msg.Body)
				return nil
			},
		)
		fix.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.ChannelEmail, msg.Channel)
				assert.Equal(t, contact.Email, msg.Destination)
				assert.Equal(t, "Quote Accepted", msg.Subject)
				return nil
			},
		)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.StatusUpdated)
		assert.True(t, res.Notified)
		assert.Equal(t, tripModel.StatusAccepted, res.CurrentStatus)
		assert.Empty(t, res.NotifyError)
	})

	t.Run("sink failure keeps the status change", func(t *testing.T) {
		fix := newLeadFixture(t)

		rejected := pendingTrip()
		rejected.Status = tripModel.StatusRejected

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rejected, nil)
		fix.tripSvc.EXPECT().Detail(gomock.Any(), rejected).Return(detailedWith(contact), nil)
		fix.templateSvc.EXPECT().ResolveByStatus(gomock.Any(), tripModel.StatusRejected).Return(acceptedTemplate(), nil)

		fix.whatsapp.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)
		fix.email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusRejected, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.StatusUpdated)
		assert.False(t, res.Notified)
		assert.Contains(t, res.NotifyError, "whatsapp")
	})

	t.Run("missing contact skips notification", func(t *testing.T) {
		fix := newLeadFixture(t)

		accepted := pendingTrip()
		accepted.Status = tripModel.StatusAccepted

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		fix.tripSvc.EXPECT().Detail(gomock.Any(), accepted).Return(detailedWith(nil), nil)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.StatusUpdated)
		assert.False(t, res.Notified)
	})

	t.Run("already decided lead reports the winning status", func(t *testing.T) {
		fix := newLeadFixture(t)

		decided := pendingTrip()
		decided.Status = tripModel.StatusRejected

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(decided, nil)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 409))
		assert.False(t, res.StatusUpdated)
		assert.Equal(t, tripModel.StatusRejected, res.CurrentStatus)
	})

	t.Run("absent lead is not found", func(t *testing.T) {
		fix := newLeadFixture(t)

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tripModel.Trip{}, nil)

		_, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("deleted lead is not found", func(t *testing.T) {
		fix := newLeadFixture(t)

		deleted := pendingTrip()
		deleted.Status = tripModel.StatusDeleted
		deleted.IsDeleted = true

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deleted, nil)

		_, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("rejects non-decision target", func(t *testing.T) {
		fix := newLeadFixture(t)

		_, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusPending, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 400))
	})

	t.Run("missing template falls back to the built-in body", func(t *testing.T) {
		fix := newLeadFixture(t)

		accepted := pendingTrip()
		accepted.Status = tripModel.StatusAccepted

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		fix.tripSvc.EXPECT().Detail(gomock.Any(), accepted).Return(detailedWith(contact), nil)
		fix.templateSvc.EXPECT().ResolveByStatus(gomock.Any(), tripModel.StatusAccepted).
			Return(templateModel.EmailTemplate{}, failure.NotFound("no template"))

		fix.whatsapp.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Contains(t, msg.Body, "Hello Jane Doe!")
				assert.Contains(t, msg.Body, "Status: Accepted")
				return nil
			},
		)
		fix.email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, "Your trip request has been Accepted", msg.Subject)
				assert.Contains(t, msg.Body, "<br>")
				return nil
			},
		)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.StatusUpdated)
		assert.True(t, res.Notified)
	})

	t.Run("template lookup error fails notification only", func(t *testing.T) {
		fix := newLeadFixture(t)

		accepted := pendingTrip()
		accepted.Status = tripModel.StatusAccepted

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accepted, nil)
		fix.tripSvc.EXPECT().Detail(gomock.Any(), accepted).Return(detailedWith(contact), nil)
		fix.templateSvc.EXPECT().ResolveByStatus(gomock.Any(), tripModel.StatusAccepted).
			Return(templateModel.EmailTemplate{}, assert.AnError)

		res, err := fix.svc.Transition(context.Background(), testTripID, tripModel.StatusAccepted, "admin@example.com")

		require.NoError(t, err)
		assert.True(t, res.StatusUpdated)
		assert.False(t, res.Notified)
		assert.Contains(t, res.NotifyError, "failed to resolve template")
	})
}

func TestLeadSoftDelete(t *testing.T) {
	t.Run("marks an active lead deleted", func(t *testing.T) {
		fix := newLeadFixture(t)

		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTrip(), nil)
		fix.tripRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mod map[string]any, _ any) error {
				assert.Equal(t, tripModel.StatusDeleted, mod[tripModel.FieldStatus])
				assert.Equal(t, true, mod[tripModel.FieldIsDeleted])
				assert.NotNil(t, mod[tripModel.FieldDeletedAt])
				return nil
			},
		)

		err := fix.svc.SoftDelete(context.Background(), testTripID, "admin@example.com")

		require.NoError(t, err)
	})

	t.Run("deleting twice is a no-op", func(t *testing.T) {
		fix := newLeadFixture(t)

		deleted := pendingTrip()
		deleted.Status = tripModel.StatusDeleted
		deleted.IsDeleted = true

		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(deleted, nil)

		err := fix.svc.SoftDelete(context.Background(), testTripID, "admin@example.com")

		require.NoError(t, err)
	})

	t.Run("absent lead is not found", func(t *testing.T) {
		fix := newLeadFixture(t)

		fix.tripRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tripModel.Trip{}, nil)

		err := fix.svc.SoftDelete(context.Background(), testTripID, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}

func TestLeadRestore(t *testing.T) {
	t.Run("restores a deleted lead to pending", func(t *testing.T) {
		fix := newLeadFixture(t)

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, mod map[string]any, _ any) (int64, error) {
				assert.Equal(t, tripModel.StatusPending, mod[tripModel.FieldStatus])
				assert.Equal(t, false, mod[tripModel.FieldIsDeleted])
				assert.Nil(t, mod[tripModel.FieldDeletedAt])
				return 1, nil
			},
		)

		err := fix.svc.Restore(context.Background(), testTripID, "admin@example.com")

		require.NoError(t, err)
	})

	t.Run("restoring an active or absent lead is not found", func(t *testing.T) {
		fix := newLeadFixture(t)

		fix.tripRepo.EXPECT().UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := fix.svc.Restore(context.Background(), testTripID, "admin@example.com")

		require.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}
