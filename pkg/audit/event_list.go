package audit

import (
	"fmt"
	"strconv"
)

// ListEvent represents a vault listing audit event
type ListEvent struct {
	User         string
	Count        int
	Success      bool
	ErrorMessage string
}

func (e ListEvent) MessageID() string {
	return "list"
}

func (e ListEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s listed %d entries", e.User, e.Count)
	}
	msg := fmt.Sprintf("%s tried to list entries", e.User)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ListEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ListEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ListEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"count": strconv.Itoa(e.Count),
		},
		SDIDAction: {
			"operation": "list",
			"result":    result,
		},
	}
}
