package media

import (
	"testing"
	"time"
)

func TestDateLayout(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"", "1/2/2006"},
		{"en-US,en;q=0.9", "1/2/2006"},
		{"en-GB", "02/01/2006"},
		{"de-DE,de;q=0.9,en;q=0.8", "2.1.2006"},
		{"ja", "2006/1/2"},
		{"tlh", "1/2/2006"},
		{";;;", "1/2/2006"},
	}

	for _, test := range tests {
		if got := DateLayout(test.header); got != test.expected {
			t.Errorf("DateLayout(%q) = %q, expected %q", test.header, got, test.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := "2009-10-25T06:57:33Z"

	if got := FormatDate(ts, "en-US", time.UTC); got != "10/25/2009" {
		t.Errorf("expected 10/25/2009, got %s", got)
	}
	if got := FormatDate(ts, "de", nil); got != "25.10.2009" {
		t.Errorf("expected 25.10.2009, got %s", got)
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	if got := FormatDate("2020-01-01T20:00:00Z", "en-US", tokyo); got != "1/2/2020" {
		t.Errorf("expected date shifted into location, got %s", got)
	}

	if got := FormatDate("yesterday", "en-US", time.UTC); got != "yesterday" {
		t.Errorf("expected unparseable value unchanged, got %s", got)
	}
}

func TestVideoPublished(t *testing.T) {
	v := &Video{PublishedAt: "2009-10-25T06:57:33Z"}
	if got := v.Published("en-GB", time.UTC); got != "25/10/2009" {
		t.Errorf("expected 25/10/2009, got %s", got)
	}
}
