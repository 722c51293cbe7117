package enums

import "testing"

func TestInquiryStatusIsValid(t *testing.T) {
	for _, status := range validInquiryStatuses {
		if !status.IsValid() {
			t.Fatalf("expected %q to be valid", status)
		}
	}
	if InquiryStatus("Closed").IsValid() {
		t.Fatal("Closed is not part of the inquiry status enum")
	}
	if InquiryStatus("completed").IsValid() {
		t.Fatal("inquiry statuses are case sensitive")
	}
}

func TestParseInquiryStatus(t *testing.T) {
	status, err := ParseInquiryStatus("Completed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != InquiryStatusCompleted {
		t.Fatalf("unexpected status %q", status)
	}

	if _, err := ParseInquiryStatus("archived"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
