package audit

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := FetchEvent{
		User:    "alice",
		Key:     "db/password",
		Success: true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.HasPrefix(output, "<86>1 ") {
		t.Errorf("Expected PRI <86> for authpriv/info, got %q", output)
	}
	if !strings.Contains(output, "cryptography") {
		t.Error("Expected app name 'cryptography' in output")
	}
	if !strings.Contains(output, "fetch") {
		t.Error("Expected message ID 'fetch' in output")
	}
	if !strings.Contains(output, "alice") {
		t.Error("Expected user in output")
	}
	if !strings.Contains(output, "db/password") {
		t.Error("Expected entry key in output")
	}
	if !strings.Contains(output, "alice fetched db/password") {
		t.Error("Expected success message in output")
	}
}

func TestSetEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     SetEvent
		wantMsg   string
		wantSev   Severity
		wantFac   int
		wantMsgID string
	}{
		{
			name: "successful set",
			event: SetEvent{
				User:    "alice",
				Key:     "db/password",
				Success: true,
			},
			wantMsg:   "alice set db/password",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "set",
		},
		{
			name: "set with ttl",
			event: SetEvent{
				User:    "alice",
				Key:     "db/password",
				TTL:     time.Minute,
				Success: true,
			},
			wantMsg:   "with ttl 1m0s",
			wantSev:   SeverityInfo,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "set",
		},
		{
			name: "failed set",
			event: SetEvent{
				User:         "alice",
				Key:          "db/password",
				Success:      false,
				ErrorMessage: "connection refused",
			},
			wantMsg:   "tried to set",
			wantSev:   SeverityWarning,
			wantFac:   FacilityAuthPriv,
			wantMsgID: "set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.Facility() != tt.wantFac {
				t.Errorf("Facility() = %v, want %v", tt.event.Facility(), tt.wantFac)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %v, want %v", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestFetchEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   FetchEvent
		wantMsg string
		wantSev Severity
	}{
		{
			name: "successful fetch",
			event: FetchEvent{
				User:    "alice",
				Key:     "db/password",
				Success: true,
			},
			wantMsg: "fetched",
			wantSev: SeverityInfo,
		},
		{
			name: "failed fetch",
			event: FetchEvent{
				User:         "alice",
				Key:          "db/password",
				Success:      false,
				ErrorMessage: "entry not found",
			},
			wantMsg: "tried to fetch db/password: entry not found",
			wantSev: SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != "fetch" {
				t.Errorf("MessageID() = %v, want 'fetch'", tt.event.MessageID())
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	event := DeleteEvent{
		User:    "alice",
		Key:     "db/password",
		Success: true,
	}

	if event.MessageID() != "delete" {
		t.Errorf("MessageID() = %v, want 'delete'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "deleted") {
		t.Errorf("Message() = %q, want to contain 'deleted'", event.Message())
	}
	if event.Severity() != SeverityInfo {
		t.Errorf("Severity() = %v, want SeverityInfo", event.Severity())
	}
}

func TestListEvent(t *testing.T) {
	event := ListEvent{
		User:    "alice",
		Count:   3,
		Success: true,
	}

	if event.MessageID() != "list" {
		t.Errorf("MessageID() = %v, want 'list'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "listed 3 entries") {
		t.Errorf("Message() = %q, want to contain 'listed 3 entries'", event.Message())
	}
	if event.StructuredData()[SDIDSubject]["count"] != "3" {
		t.Errorf("StructuredData subject.count = %v, want '3'", event.StructuredData()[SDIDSubject]["count"])
	}
}

func TestImportEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   ImportEvent
		wantMsg string
	}{
		{
			name: "import from file",
			event: ImportEvent{
				User:    "alice",
				Source:  "secrets.yml",
				Count:   2,
				Success: true,
			},
			wantMsg: "imported 2 entries from secrets.yml",
		},
		{
			name: "import from stdin",
			event: ImportEvent{
				User:    "alice",
				Count:   1,
				Success: true,
			},
			wantMsg: "from stdin",
		},
		{
			name: "failed import",
			event: ImportEvent{
				User:         "alice",
				Source:       "secrets.yml",
				Success:      false,
				ErrorMessage: "failed to parse entries",
			},
			wantMsg: "tried to import",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "import" {
				t.Errorf("MessageID() = %v, want 'import'", tt.event.MessageID())
			}
		})
	}
}

func TestStructuredData(t *testing.T) {
	event := SetEvent{
		User:    "alice",
		Key:     "db/password",
		TTL:     time.Minute,
		Success: true,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "alice" {
		t.Errorf("StructuredData auth.user = %v, want 'alice'", sd[SDIDAuth]["user"])
	}
	if sd[SDIDSubject]["key"] != "db/password" {
		t.Errorf("StructuredData subject.key = %v, want 'db/password'", sd[SDIDSubject]["key"])
	}
	if sd[SDIDSubject]["ttl"] != "1m0s" {
		t.Errorf("StructuredData subject.ttl = %v, want '1m0s'", sd[SDIDSubject]["ttl"])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("StructuredData action.result = %v, want 'success'", sd[SDIDAction]["result"])
	}
}

func TestAuditToggle(t *testing.T) {
	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"db/password", `"db/password"`},
		{`key"quoted`, `"key\"quoted"`},
		{`back\slash`, `"back\\slash"`},
		{`close]bracket`, `"close\]bracket"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
