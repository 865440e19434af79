package audit

import (
	"fmt"
	"time"
)

// SetEvent represents a vault entry write audit event
type SetEvent struct {
	User         string
	Key          string
	TTL          time.Duration
	Success      bool
	ErrorMessage string
}

func (e SetEvent) MessageID() string {
	return "set"
}

func (e SetEvent) Message() string {
	entry := e.Key
	if e.TTL > 0 {
		entry = fmt.Sprintf("%s with ttl %s", e.Key, e.TTL)
	}
	if e.Success {
		return fmt.Sprintf("%s set %s", e.User, entry)
	}
	msg := fmt.Sprintf("%s tried to set %s", e.User, entry)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e SetEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e SetEvent) Facility() int {
	return FacilityAuthPriv
}

func (e SetEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"key": e.Key,
		},
		SDIDAction: {
			"operation": "set",
		},
	}
	if e.TTL > 0 {
		sd[SDIDSubject]["ttl"] = e.TTL.String()
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// FetchEvent represents a vault entry read audit event
type FetchEvent struct {
	User         string
	Key          string
	Success      bool
	ErrorMessage string
}

func (e FetchEvent) MessageID() string {
	return "fetch"
}

func (e FetchEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s fetched %s", e.User, e.Key)
	}
	msg := fmt.Sprintf("%s tried to fetch %s", e.User, e.Key)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e FetchEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e FetchEvent) Facility() int {
	return FacilityAuthPriv
}

func (e FetchEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"key": e.Key,
		},
		SDIDAction: {
			"operation": "fetch",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// DeleteEvent represents a vault entry removal audit event
type DeleteEvent struct {
	User         string
	Key          string
	Success      bool
	ErrorMessage string
}

func (e DeleteEvent) MessageID() string {
	return "delete"
}

func (e DeleteEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s deleted %s", e.User, e.Key)
	}
	msg := fmt.Sprintf("%s tried to delete %s", e.User, e.Key)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e DeleteEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e DeleteEvent) Facility() int {
	return FacilityAuthPriv
}

func (e DeleteEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"user": e.User,
		},
		SDIDSubject: {
			"key": e.Key,
		},
		SDIDAction: {
			"operation": "delete",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
