package dto

// UpdateStatusRequest is an admin decision on a pending lead. Only the two
// decision statuses are accepted here; deletion and restore have their own
// endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Accepted Rejected"`
}

// TransitionResult reports a decision outcome. The status update and the
// customer notification commit independently: a sink failure leaves
// StatusUpdated true with the failure recorded in NotifyError.
type TransitionResult struct {
	StatusUpdated bool   `json:"status_updated"`
	Notified      bool   `json:"notified"`
	CurrentStatus string `json:"current_status"`
	NotifyError   string `json:"notify_error,omitempty"`
}
