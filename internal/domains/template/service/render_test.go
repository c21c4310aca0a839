package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"charter/internal/domains/template/model"
	"charter/internal/domains/template/service"
	tripModel "charter/internal/domains/trip/model"
	"charter/internal/notification"
)

func TestNewRenderContext(t *testing.T) {
	fullTrip := tripModel.DetailedTrip{
		Trip: tripModel.Trip{
			TripType:            tripModel.TripTypeReturn,
			PickupLocation:      "Hamburg",
			DestinationLocation: "Berlin",
			NumberOfPeople:      45,
		},
		GoingStops: []tripModel.Stop{
			{Location: "Bremen", Duration: "30m"},
			{Location: "Hannover"},
		},
		ReturnStops: []tripModel.Stop{
			{Location: "Potsdam", Duration: "1h"},
		},
		Timing: &tripModel.TripTiming{
			ID:            "timing-1",
			DepartureDate: "2026-09-12",
			DepartureTime: "08:30",
			ReturnDate:    "2026-09-14",
			ReturnTime:    "18:00",
		},
		User: &tripModel.UserDetails{FullName: "Jane Doe"},
	}

	t.Run("complete trip keeps all values", func(t *testing.T) {
		rctx := service.NewRenderContext(fullTrip, tripModel.StatusAccepted)

		assert.Equal(t, "Jane Doe", rctx.UserName)
		assert.Equal(t, tripModel.TripTypeReturn, rctx.TripType)
		assert.Equal(t, "Hamburg", rctx.Pickup)
		assert.Equal(t, "Berlin", rctx.Destination)
		assert.Equal(t, "2026-09-12", rctx.DepartureDate)
		assert.Equal(t, "08:30", rctx.DepartureTime)
		assert.Equal(t, "2026-09-14", rctx.ReturnDate)
		assert.Equal(t, "18:00", rctx.ReturnTime)
		assert.Equal(t, "Bremen (30m), Hannover (-)", rctx.GoingStops)
		assert.Equal(t, "Potsdam (1h)", rctx.ReturnStops)
		assert.Equal(t, "45", rctx.Passengers)
		assert.Equal(t, tripModel.StatusAccepted, rctx.Status)
	})

	t.Run("bare trip falls back everywhere", func(t *testing.T) {
		rctx := service.NewRenderContext(tripModel.DetailedTrip{
			Trip: tripModel.Trip{
				TripType:            tripModel.TripTypeOneWay,
				PickupLocation:      "Hamburg",
				DestinationLocation: "Berlin",
				NumberOfPeople:      10,
			},
		}, tripModel.StatusRejected)

		assert.Empty(t, rctx.UserName)
		assert.Equal(t, "-", rctx.DepartureDate)
		assert.Equal(t, "-", rctx.DepartureTime)
		assert.Equal(t, "No return", rctx.ReturnDate)
		assert.Equal(t, "-", rctx.ReturnTime)
		assert.Equal(t, "None", rctx.GoingStops)
		assert.Equal(t, "None", rctx.ReturnStops)
	})

	t.Run("one-way timing keeps the no-return fallback", func(t *testing.T) {
		rctx := service.NewRenderContext(tripModel.DetailedTrip{
			Trip: tripModel.Trip{TripType: tripModel.TripTypeOneWay},
			Timing: &tripModel.TripTiming{
				ID:            "timing-2",
				DepartureDate: "2026-10-01",
				DepartureTime: "07:00",
			},
		}, tripModel.StatusAccepted)

		assert.Equal(t, "2026-10-01", rctx.DepartureDate)
		assert.Equal(t, "No return", rctx.ReturnDate)
		assert.Equal(t, "-", rctx.ReturnTime)
	})
}

func TestRender(t *testing.T) {
	rctx := service.RenderContext{
		UserName:      "Jane Doe",
		TripType:      "return",
		Pickup:        "Hamburg",
		Destination:   "Berlin",
		DepartureDate: "2026-09-12",
		DepartureTime: "08:30",
		ReturnDate:    "No return",
		ReturnTime:    "-",
		GoingStops:    "None",
		ReturnStops:   "None",
		Passengers:    "45",
		Status:        "Accepted",
	}

	tests := []struct {
		name        string
		template    model.EmailTemplate
		channel     notification.Channel
		wantSubject string
		wantBody    string
	}{
		{
			name: "substitutes known tokens",
			template: model.EmailTemplate{
				Subject: "Your trip to {{destination}}",
				Body:    "Hi {{userName}}, your quote is {{status}}. Departure: {{departureDate}} at {{departureTime}}.",
			},
			channel:     notification.ChannelWhatsApp,
			wantSubject: "Your trip to Berlin",
			wantBody:    "Hi Jane Doe, your quote is Accepted. Departure: 2026-09-12 at 08:30.",
		},
		{
			name: "unknown tokens stay verbatim",
			template: model.EmailTemplate{
				Subject: "{{destination}} {{mystery}}",
				Body:    "{{userName}} {{notAToken}}",
			},
			channel:     notification.ChannelWhatsApp,
			wantSubject: "Berlin {{mystery}}",
			wantBody:    "Jane Doe {{notAToken}}",
		},
		{
			name: "email channel converts newlines to markup",
			template: model.EmailTemplate{
				Subject: "Quote {{status}}",
				Body:    "Hi {{userName}},\nreturn: {{returnDate}}\nstops: {{goingStops}}",
			},
			channel:     notification.ChannelEmail,
			wantSubject: "Quote Accepted",
			wantBody:    "Hi Jane Doe,<br>return: No return<br>stops: None",
		},
		{
			name: "whatsapp channel keeps newlines",
			template: model.EmailTemplate{
				Subject: "Quote {{status}}",
				Body:    "line one\nline two",
			},
			channel:     notification.ChannelWhatsApp,
			wantSubject: "Quote Accepted",
			wantBody:    "line one\nline two",
		},
		{
			name: "repeated tokens all substituted",
			template: model.EmailTemplate{
				Subject: "{{pickup}} to {{destination}}",
				Body:    "{{pickup}} {{pickup}} {{passengers}}",
			},
			channel:     notification.ChannelWhatsApp,
			wantSubject: "Hamburg to Berlin",
			wantBody:    "Hamburg Hamburg 45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := service.Render(tt.template, rctx, tt.channel)

			assert.Equal(t, tt.wantSubject, subject)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
