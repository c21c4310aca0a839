package dto

import (
	"github.com/google/uuid"

	"charter/internal/domains/trip/model"
	"charter/shared"
	gDto "charter/shared/dto"
	gModel "charter/shared/model"
	"charter/shared/timezone"
)

type StopRequest struct {
	Location string `json:"location" validate:"required,max=200"`
	Duration string `json:"duration" validate:"omitempty,max=50"`
	StopType string `json:"stop_type" validate:"omitempty,oneof=going return"`
}

type TimingRequest struct {
	DepartureDate string `json:"departure_date" validate:"required,max=30"`
	DepartureTime string `json:"departure_time" validate:"omitempty,max=30"`
	ReturnDate    string `json:"return_date"    validate:"omitempty,max=30"`
	ReturnTime    string `json:"return_time"    validate:"omitempty,max=30"`
}

type UserDetailsRequest struct {
	FullName              string `json:"full_name"                validate:"required,max=100"`
	PhoneNumber           string `json:"phone_number"             validate:"required,max=20"`
	Email                 string `json:"email"                    validate:"required,email,max=100"`
	Password              string `json:"password"                 validate:"required,min=6,max=72"`
	AdditionalInfo        string `json:"additional_info"          validate:"omitempty,max=2000"`
	ConfirmedDetails      bool   `json:"confirmed_details"        validate:"required"`
	AgreedToPrivacyPolicy bool   `json:"agreed_to_privacy_policy" validate:"required"`
}

// CreateTripRequest is the public trip-quote submission: the quote itself plus
// its stops, timing and the submitter's contact details, written together.
type CreateTripRequest struct {
	TripType            string             `json:"trip_type"            validate:"required,oneof=one-way return"`
	PickupLocation      string             `json:"pickup_location"      validate:"required,max=200"`
	DestinationLocation string             `json:"destination_location" validate:"required,max=200"`
	NumberOfPeople      int                `json:"number_of_people"     validate:"required,gte=1"`
	Stops               []StopRequest      `json:"stops"                validate:"omitempty,dive"`
	Timing              *TimingRequest     `json:"timing"               validate:"omitempty"`
	User                UserDetailsRequest `json:"user"                 validate:"required"`
}

func (c *CreateTripRequest) ToTripModel(createdBy string) model.Trip {
	return model.Trip{
		ID:                  uuid.NewString(),
		TripType:            c.TripType,
		PickupLocation:      c.PickupLocation,
		DestinationLocation: c.DestinationLocation,
		NumberOfPeople:      c.NumberOfPeople,
		Status:              model.StatusPending,
		IsDeleted:           false,
		Metadata:            newMetadata(createdBy),
	}
}

func (c *CreateTripRequest) ToStopModels(tripID, createdBy string) []model.Stop {
	stops := make([]model.Stop, len(c.Stops))

	for i, stop := range c.Stops {
		stopType := stop.StopType
		if stopType == "" {
			stopType = model.StopTypeGoing
		}

		stops[i] = model.Stop{
			ID:       uuid.NewString(),
			TripID:   tripID,
			Location: stop.Location,
			Duration: stop.Duration,
			StopType: stopType,
			Metadata: newMetadata(createdBy),
		}
	}

	return stops
}

func (c *CreateTripRequest) ToTimingModel(tripID, createdBy string) *model.TripTiming {
	if c.Timing == nil {
		return nil
	}

	return &model.TripTiming{
		ID:            uuid.NewString(),
		TripID:        tripID,
		DepartureDate: c.Timing.DepartureDate,
		DepartureTime: c.Timing.DepartureTime,
		ReturnDate:    c.Timing.ReturnDate,
		ReturnTime:    c.Timing.ReturnTime,
		Metadata:      newMetadata(createdBy),
	}
}

func (c *CreateTripRequest) ToUserModel(tripID, hashedPassword, createdBy string) model.UserDetails {
	return model.UserDetails{
		ID:                    uuid.NewString(),
		TripID:                tripID,
		FullName:              c.User.FullName,
		PhoneNumber:           c.User.PhoneNumber,
		Email:                 c.User.Email,
		Password:              hashedPassword,
		AdditionalInfo:        c.User.AdditionalInfo,
		ConfirmedDetails:      c.User.ConfirmedDetails,
		AgreedToPrivacyPolicy: c.User.AgreedToPrivacyPolicy,
		Metadata:              newMetadata(createdBy),
	}
}

func newMetadata(createdBy string) gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  createdBy,
		ModifiedBy: createdBy,
	}
}

type StopResponse struct {
	ID       string `json:"id"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	StopType string `json:"stop_type"`
}

func (r *StopResponse) FromModel(mod model.Stop) {
	r.ID = mod.ID
	r.Location = mod.Location
	r.Duration = mod.Duration
	r.StopType = mod.StopType
}

type TimingResponse struct {
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	ReturnDate    string `json:"return_date"`
	ReturnTime    string `json:"return_time"`
}

type UserDetailsResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	AdditionalInfo string `json:"additional_info"`
}

// DetailedTripResponse mirrors model.DetailedTrip for staff views. Timing and
// User stay null in the payload when the lead has no such rows.
type DetailedTripResponse struct {
	ID                  string               `json:"id"`
	TripType            string               `json:"trip_type"`
	PickupLocation      string               `json:"pickup_location"`
	DestinationLocation string               `json:"destination_location"`
	NumberOfPeople      int                  `json:"number_of_people"`
	Status              string               `json:"status"`
	IsDeleted           bool                 `json:"is_deleted"`
	DeletedAt           string               `json:"deleted_at,omitempty"`
	GoingStops          []StopResponse       `json:"going_stops"`
	ReturnStops         []StopResponse       `json:"return_stops"`
	Timing              *TimingResponse      `json:"timing"`
	User                *UserDetailsResponse `json:"user"`
	gDto.Metadata
}

func (r *DetailedTripResponse) FromModel(detailed model.DetailedTrip) {
	trip := detailed.Trip

	r.ID = trip.ID
	r.TripType = trip.TripType
	r.PickupLocation = trip.PickupLocation
	r.DestinationLocation = trip.DestinationLocation
	r.NumberOfPeople = trip.NumberOfPeople
	r.Status = trip.Status
	r.IsDeleted = trip.IsDeleted

	if trip.DeletedAt != nil {
		r.DeletedAt = timezone.Format(*trip.DeletedAt, "2006-01-02T15:04:05Z07:00")
	}

	r.GoingStops = make([]StopResponse, len(detailed.GoingStops))
	for i, stop := range detailed.GoingStops {
		r.GoingStops[i].FromModel(stop)
	}

	r.ReturnStops = make([]StopResponse, len(detailed.ReturnStops))
	for i, stop := range detailed.ReturnStops {
		r.ReturnStops[i].FromModel(stop)
	}

	if detailed.Timing != nil {
		r.Timing = &TimingResponse{
			DepartureDate: detailed.Timing.DepartureDate,
			DepartureTime: detailed.Timing.DepartureTime,
			ReturnDate:    detailed.Timing.ReturnDate,
			ReturnTime:    detailed.Timing.ReturnTime,
		}
	}

	if detailed.User != nil {
		r.User = &UserDetailsResponse{
			ID:             detailed.User.ID,
			FullName:       detailed.User.FullName,
			PhoneNumber:    detailed.User.PhoneNumber,
			Email:          detailed.User.Email,
			AdditionalInfo: detailed.User.AdditionalInfo,
		}
	}

	r.Metadata.FromModel(trip.Metadata)
}

type GetLeadsResponse struct {
	Leads     []DetailedTripResponse `json:"leads"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetLeadsResponse) FromModels(models []model.DetailedTrip, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Leads = make([]DetailedTripResponse, len(models))
	for i, mod := range models {
		r.Leads[i].FromModel(mod)
	}
}

type CreateTripResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
