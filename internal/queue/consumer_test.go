package queue

import (
    "bytes"
    "strings"
    "testing"
)

func TestFormatCreatedLine(t *testing.T) {
    ev := BookingCreatedEvent{
        BookingID:     11,
        UserID:        7,
        MovieID:       1,
        MovieTitle:    "Dune",
        NumberOfSeats: 3,
        TotalPrice:    45,
        ShowTime:      "2026-09-12T20:00:00Z",
        BookingDate:   "2026-08-31T10:00:00Z",
    }
    line := formatCreated(ev)
    for _, want := range []string{"Booking created", "booking_id=11", "user_id=7", `movie="Dune"`, "seats=3", "total=45.00"} {
        if !strings.Contains(line, want) {
            t.Fatalf("line %q missing %q", line, want)
        }
    }
    if !strings.HasSuffix(line, "\n") {
        t.Fatalf("audit lines must end with a newline: %q", line)
    }
}

func TestFormatCancelledLine(t *testing.T) {
    ev := BookingCancelledEvent{BookingID: 11, UserID: 7, MovieID: 1, MovieTitle: "Dune", CancelledAt: "2026-08-31T11:00:00Z"}
    line := formatCancelled(ev)
    for _, want := range []string{"Booking cancelled", "booking_id=11", `movie="Dune"`} {
        if !strings.Contains(line, want) {
            t.Fatalf("line %q missing %q", line, want)
        }
    }
}

func TestHandleCreatedRejectsMalformedPayload(t *testing.T) {
    if err := handleCreated([]byte("{not json")); err == nil {
        t.Fatal("expected an unmarshal error")
    }
}

func TestWriteAuditLine(t *testing.T) {
    var buf bytes.Buffer
    if err := writeAuditLine(&buf, "hello\n"); err != nil {
        t.Fatalf("write: %v", err)
    }
    if buf.String() != "hello\n" {
        t.Fatalf("unexpected content: %q", buf.String())
    }
}
