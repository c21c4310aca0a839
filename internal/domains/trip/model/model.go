package model

import (
	"time"

	"charter/shared/model"
)

const (
	TableName  = "trip_quotes"
	EntityName = "trip"

	FieldID                  = "id"
	FieldTripType            = "trip_type"
	FieldPickupLocation      = "pickup_location"
	FieldDestinationLocation = "destination_location"
	FieldNumberOfPeople      = "number_of_people"
	FieldStatus              = "status"
	FieldIsDeleted           = "is_deleted"
	FieldDeletedAt           = "deleted_at"
)

const (
	TripTypeOneWay = "one-way"
	TripTypeReturn = "return"
)

// Lead statuses. A trip quote is decided at most once: only Pending leads may be
// accepted or rejected. Deleted is entered through soft delete and left through
// restore, which always resets the lead to Pending.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
	StatusDeleted  = "Deleted"
)

// decisionTransitions is the accept/reject edge set of the lead lifecycle.
// Soft delete and restore are handled by dedicated operations, not by this map.
var decisionTransitions = map[string][]string{
	StatusPending:  {StatusAccepted, StatusRejected},
	StatusAccepted: {},
	StatusRejected: {},
	StatusDeleted:  {},
}

// CanDecide reports whether a lead currently in `from` may move to the decision
// status `to`.
func CanDecide(from, to string) bool {
	for _, allowed := range decisionTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// IsDecision reports whether the given status is a terminal accept/reject decision.
func IsDecision(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

type Trip struct {
	ID                  string     `db:"id"`
	TripType            string     `db:"trip_type"`
	PickupLocation      string     `db:"pickup_location"`
	DestinationLocation string     `db:"destination_location"`
	NumberOfPeople      int        `db:"number_of_people"`
	Status              string     `db:"status"`
	IsDeleted           bool       `db:"is_deleted"`
	DeletedAt           *time.Time `db:"deleted_at"`
	model.Metadata
}

const (
	StopTableName  = "trip_stops"
	StopEntityName = "stop"

	StopFieldID       = "id"
	StopFieldTripID   = "trip_id"
	StopFieldLocation = "location"
	StopFieldDuration = "duration"
	StopFieldStopType = "stop_type"
)

const (
	StopTypeGoing  = "going"
	StopTypeReturn = "return"
)

type Stop struct {
	ID       string `db:"id"`
	TripID   string `db:"trip_id"`
	Location string `db:"location"`
	Duration string `db:"duration"`
	StopType string `db:"stop_type"`
	model.Metadata
}

const (
	TimingTableName  = "trip_timings"
	TimingEntityName = "timing"

	TimingFieldID     = "id"
	TimingFieldTripID = "trip_id"
)

// TripTiming keeps the departure/return fields as free-form strings; one-way
// trips legitimately leave the return pair empty.
type TripTiming struct {
	ID            string `db:"id"`
	TripID        string `db:"trip_id"`
	DepartureDate string `db:"departure_date"`
	DepartureTime string `db:"departure_time"`
	ReturnDate    string `db:"return_date"`
	ReturnTime    string `db:"return_time"`
	model.Metadata
}

const (
	UserTableName  = "trip_users"
	UserEntityName = "trip user"

	UserFieldID          = "id"
	UserFieldTripID      = "trip_id"
	UserFieldEmail       = "email"
	UserFieldPhoneNumber = "phone_number"
)

// UserDetails is the contact record captured with a single submission, not a
// persistent customer identity.
type UserDetails struct {
	ID                    string     `db:"id"`
	TripID                string     `db:"trip_id"`
	FullName              string     `db:"full_name"`
	PhoneNumber           string     `db:"phone_number"`
	Email                 string     `db:"email"`
	Password              string     `db:"password"`
	AdditionalInfo        string     `db:"additional_info"`
	ConfirmedDetails      bool       `db:"confirmed_details"`
	AgreedToPrivacyPolicy bool       `db:"agreed_to_privacy_policy"`
	WhatsappSID           string     `db:"whatsapp_sid"`
	ResetPasswordToken    *string    `db:"reset_password_token"`
	ResetPasswordExpires  *time.Time `db:"reset_password_expires"`
	model.Metadata
}

// DetailedTrip is the aggregate staff-facing view of a lead: the quote joined
// with its stops, timing and submitter. Timing and User are nil when the
// related rows are missing; a partially-written submission must still render.
type DetailedTrip struct {
	Trip        Trip
	GoingStops  []Stop
	ReturnStops []Stop
	Timing      *TripTiming
	User        *UserDetails
}
