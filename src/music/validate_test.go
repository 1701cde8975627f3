package music

import (
	"strings"
	"testing"
)

func TestTrackValidate(t *testing.T) {
	tests := []struct {
		name    string
		track   Track
		wantErr bool
	}{
		{
			name:  "valid track",
			track: Track{Name: "Sunrise", MediaTypeID: 1, Milliseconds: 198000, Bytes: 3170000, UnitPrice: 0.99},
		},
		{
			name:    "empty name",
			track:   Track{Name: "   ", MediaTypeID: 1},
			wantErr: true,
		},
		{
			name:    "missing media type",
			track:   Track{Name: "Sunrise"},
			wantErr: true,
		},
		{
			name:    "negative duration",
			track:   Track{Name: "Sunrise", MediaTypeID: 1, Milliseconds: -1},
			wantErr: true,
		},
		{
			name:    "name too long",
			track:   Track{Name: strings.Repeat("x", 501), MediaTypeID: 1},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.track.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestPlaylistValidate(t *testing.T) {
	if err := (&Playlist{Name: "Morning"}).Validate(); err != nil {
		t.Fatalf("expected valid playlist, got %v", err)
	}
	if err := (&Playlist{Name: " "}).Validate(); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Norah Jones "); got != "Norah Jones" {
		t.Errorf("expected trimmed name, got %q", got)
	}
	if got := NormalizeName("   "); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestArtistValidateAllowsEmptyName(t *testing.T) {
	if err := (&Artist{}).Validate(); err != nil {
		t.Fatalf("unnamed artists are legal, got %v", err)
	}
}
