package domain

import "fmt"

// Status is the closed set of job-application states. The constant value is
// the stable wire name; DisplayName carries the human label.
type Status string

const (
	StatusApplied              Status = "APPLIED"
	StatusPhoneInterview       Status = "PHONE_INTERVIEW"
	StatusTechnicalInterview   Status = "TECHNICAL_INTERVIEW"
	StatusBehaviouralInterview Status = "BEHAVIOURAL_INTERVIEW"
	StatusOnSiteInterview      Status = "ON_SITE_INTERVIEW"
	StatusFinalInterview       Status = "FINAL_INTERVIEW"
	StatusOfferReceived        Status = "OFFER_RECEIVED"
	StatusOfferAccepted        Status = "OFFER_ACCEPTED"
	StatusOfferRejected        Status = "OFFER_REJECTED"
	StatusRejected             Status = "REJECTED"
	StatusWithdrawn            Status = "WITHDRAWN"
	StatusNoResponse           Status = "NO_RESPONSE"
)

var displayNames = map[Status]string{
	StatusApplied:              "Applied",
	StatusPhoneInterview:       "Phone Interview",
	StatusTechnicalInterview:   "Technical Interview",
	StatusBehaviouralInterview: "Behavioural Interview",
	StatusOnSiteInterview:      "On-site Interview",
	StatusFinalInterview:       "Final Interview",
	StatusOfferReceived:        "Offer Received",
	StatusOfferAccepted:        "Offer Accepted",
	StatusOfferRejected:        "Offer Rejected",
	StatusRejected:             "Rejected",
	StatusWithdrawn:            "Withdrawn",
	StatusNoResponse:           "No Response",
}

// AllStatuses lists every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{
		StatusApplied,
		StatusPhoneInterview,
		StatusTechnicalInterview,
		StatusBehaviouralInterview,
		StatusOnSiteInterview,
		StatusFinalInterview,
		StatusOfferReceived,
		StatusOfferAccepted,
		StatusOfferRejected,
		StatusRejected,
		StatusWithdrawn,
		StatusNoResponse,
	}
}

// ParseStatus maps a wire name to its Status, rejecting anything outside the
// closed set.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := displayNames[st]; !ok {
		return "", fmt.Errorf("unknown application status: %q", s)
	}
	return st, nil
}

// DisplayName returns the human label for the status.
func (s Status) DisplayName() string {
	return displayNames[s]
}

func (s Status) IsValid() bool {
	_, ok := displayNames[s]
	return ok
}
