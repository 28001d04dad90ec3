package domain

import "testing"

func TestLeadStatusSets(t *testing.T) {
	tests := []struct {
		status     LeadStatus
		wantActive bool
		wantDone   bool
	}{
		{LeadStatusInterested, true, false},
		{LeadStatusOpen, true, false},
		{LeadStatusFollowUp, true, false},
		{LeadStatusPending, true, false},
		{LeadStatusDone, true, true},
		{LeadStatusClosed, true, true},
		{LeadStatusNotInterested, false, false},
		{LeadStatus("bogus"), false, false},
	}

	for _, tt := range tests {
		l := &Lead{Status: tt.status}
		if got := l.IsActive(); got != tt.wantActive {
			t.Errorf("IsActive(%q) = %v, want %v", tt.status, got, tt.wantActive)
		}
		if got := l.IsDone(); got != tt.wantDone {
			t.Errorf("IsDone(%q) = %v, want %v", tt.status, got, tt.wantDone)
		}
	}
}

func TestDoneIsSubsetOfActive(t *testing.T) {
	for _, s := range DoneStatuses {
		if !statusIn(s, ActiveStatuses) {
			t.Errorf("%q is done but not active", s)
		}
	}
}
