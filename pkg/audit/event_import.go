package audit

import (
	"fmt"
	"strconv"
)

// ImportEvent represents a bulk vault import audit event
type ImportEvent struct {
	User         string
	Source       string
	Count        int
	Success      bool
	ErrorMessage string
}

func (e ImportEvent) MessageID() string {
	return "import"
}

func (e ImportEvent) Message() string {
	source := e.Source
	if source == "" {
		source = "stdin"
	}
	if e.Success {
		return fmt.Sprintf("%s imported %d entries from %s", e.User, e.Count, source)
	}
	msg := fmt.Sprintf("%s tried to import entries from %s", e.User, source)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e ImportEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e ImportEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ImportEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"count": strconv.Itoa(e.Count),
		},
		SDIDAction: {
			"operation": "import",
			"result":    result,
		},
	}
	if e.Source != "" {
		sd[SDIDSubject]["source"] = e.Source
	}
	return sd
}
