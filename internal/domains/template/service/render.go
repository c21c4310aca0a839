package service

import (
	"fmt"
	"strconv"
	"strings"

	"charter/internal/domains/template/model"
	tripModel "charter/internal/domains/trip/model"
	"charter/internal/notification"
)

// Fallback literals for fields a lead may legitimately lack.
const (
	fallbackNoReturn = "No return"
	fallbackDash     = "-"
	fallbackNone     = "None"
)

// RenderContext carries the substitution values for one notification, with
// fallbacks already applied. Field order matches the token list below.
type RenderContext struct {
	UserName      string
	TripType      string
	Pickup        string
	Destination   string
	DepartureDate string
	DepartureTime string
	ReturnDate    string
	ReturnTime    string
	GoingStops    string
	ReturnStops   string
	Passengers    string
	Status        string
}

// NewRenderContext flattens an aggregated lead into substitution values.
// Missing timing renders the departure pair as "-" and the return date as
// "No return"; empty stop lists render as "None".
func NewRenderContext(detailed tripModel.DetailedTrip, status string) RenderContext {
	rctx := RenderContext{
		TripType:      detailed.Trip.TripType,
		Pickup:        detailed.Trip.PickupLocation,
		Destination:   detailed.Trip.DestinationLocation,
		DepartureDate: fallbackDash,
		DepartureTime: fallbackDash,
		ReturnDate:    fallbackNoReturn,
		ReturnTime:    fallbackDash,
		GoingStops:    renderStops(detailed.GoingStops),
		ReturnStops:   renderStops(detailed.ReturnStops),
		Passengers:    strconv.Itoa(detailed.Trip.NumberOfPeople),
		Status:        status,
	}

	if detailed.User != nil {
		rctx.UserName = detailed.User.FullName
	}

	if timing := detailed.Timing; timing != nil {
		if timing.DepartureDate != "" {
			rctx.DepartureDate = timing.DepartureDate
		}

		if timing.DepartureTime != "" {
			rctx.DepartureTime = timing.DepartureTime
		}

		if timing.ReturnDate != "" {
			rctx.ReturnDate = timing.ReturnDate
		}

		if timing.ReturnTime != "" {
			rctx.ReturnTime = timing.ReturnTime
		}
	}

	return rctx
}

// renderStops formats a stop list as "location (duration-or-dash)" entries
// joined by commas.
func renderStops(stops []tripModel.Stop) string {
	if len(stops) == 0 {
		return fallbackNone
	}

	rendered := make([]string, len(stops))

	for i, stop := range stops {
		duration := stop.Duration
		if duration == "" {
			duration = fallbackDash
		}

		rendered[i] = fmt.Sprintf("%s (%s)", stop.Location, duration)
	}

	return strings.Join(rendered, ", ")
}

func (rctx RenderContext) tokens() map[string]string {
	return map[string]string{
		"userName":      rctx.UserName,
		"tripType":      rctx.TripType,
		"pickup":        rctx.Pickup,
		"destination":   rctx.Destination,
		"departureDate": rctx.DepartureDate,
		"departureTime": rctx.DepartureTime,
		"returnDate":    rctx.ReturnDate,
		"returnTime":    rctx.ReturnTime,
		"goingStops":    rctx.GoingStops,
		"returnStops":   rctx.ReturnStops,
		"passengers":    rctx.Passengers,
		"status":        rctx.Status,
	}
}

// Render substitutes every recognized {{token}} in the template's subject and
// body. Unrecognized tokens stay verbatim. Newlines become <br> markup for the
// email channel only; plain-text channels keep the body as stored.
func Render(tpl model.EmailTemplate, rctx RenderContext, channel notification.Channel) (subject, body string) {
	subject = substitute(tpl.Subject, rctx)
	body = substitute(tpl.Body, rctx)

	if channel == notification.ChannelEmail {
		body = strings.ReplaceAll(body, "\n", "<br>")
	}

	return subject, body
}

func substitute(text string, rctx RenderContext) string {
	for token, value := range rctx.tokens() {
		text = strings.ReplaceAll(text, "{{"+token+"}}", value)
	}

	return text
}
