package smsalert

import (
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/tidwall/gjson"
)

// Provider descriptions that carry a verify verdict. Everything else is Unknown.
const (
	DescriptionMatched    = "Code Matched successfully."
	DescriptionNotMatched = "Code does not match."
)

// ClassifyVerify maps a verify response body to a match outcome using
// description.desc
func ClassifyVerify(body []byte) domain.MatchOutcome {
	if !gjson.ValidBytes(body) {
		return domain.OutcomeUnknown
	}
	desc := gjson.GetBytes(body, "description.desc")
	if desc.Type != gjson.String {
		return domain.OutcomeUnknown
	}
	switch desc.Str {
	case DescriptionMatched:
		return domain.OutcomeMatched
	case DescriptionNotMatched:
		return domain.OutcomeNotMatched
	}
	return domain.OutcomeUnknown
}

// Accepted reports whether a send or resend response has status "success"
func Accepted(body []byte) bool {
	if !gjson.ValidBytes(body) {
		return false
	}
	status := gjson.GetBytes(body, "status")
	return status.Type == gjson.String && status.Str == "success"
}
