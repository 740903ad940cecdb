package edtypes_test

import (
	"testing"

	"github.com/aisa-it/velostore/velostore.go/internal/velostore/editor/edtypes"
)

func TestResolveVideoURL(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantState    edtypes.VideoState
		wantPlatform edtypes.VideoPlatform
		wantID       string
	}{
		{
			name:         "youtube watch",
			url:          "https://youtube.com/watch?v=dQw4w9WgXcQ",
			wantState:    edtypes.VideoURLResolved,
			wantPlatform: edtypes.PlatformYouTube,
			wantID:       "dQw4w9WgXcQ",
		},
		{
			name:         "youtube short link",
			url:          "https://youtu.be/dQw4w9WgXcQ",
			wantState:    edtypes.VideoURLResolved,
			wantPlatform: edtypes.PlatformYouTube,
			wantID:       "dQw4w9WgXcQ",
		},
		{
			name:         "youtube embed",
			url:          "https://youtube.com/embed/dQw4w9WgXcQ",
			wantState:    edtypes.VideoURLResolved,
			wantPlatform: edtypes.PlatformYouTube,
			wantID:       "dQw4w9WgXcQ",
		},
		{
			name:         "youtube www watch",
			url:          "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			wantState:    edtypes.VideoURLResolved,
			wantPlatform: edtypes.PlatformYouTube,
			wantID:       "dQw4w9WgXcQ",
		},
		{
			name:         "vimeo numeric path",
			url:          "https://vimeo.com/76979871",
			wantState:    edtypes.VideoURLResolved,
			wantPlatform: edtypes.PlatformVimeo,
			wantID:       "76979871",
		},
		{
			name:      "not a url",
			url:       "not a url",
			wantState: edtypes.VideoURLInvalid,
		},
		{
			name:      "unknown host",
			url:       "https://rutube.ru/video/abc123/",
			wantState: edtypes.VideoURLInvalid,
		},
		{
			name:      "youtube without id",
			url:       "https://youtube.com/watch",
			wantState: edtypes.VideoURLInvalid,
		},
		{
			name:      "youtube id of wrong length",
			url:       "https://youtu.be/short",
			wantState: edtypes.VideoURLInvalid,
		},
		{
			name:      "empty url is distinct from invalid",
			url:       "",
			wantState: edtypes.VideoURLEmpty,
		},
		{
			name:      "whitespace only url is empty",
			url:       "   ",
			wantState: edtypes.VideoURLEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := edtypes.ResolveVideoURL(tt.url)

			if got.State != tt.wantState {
				t.Fatalf("State = %v, want %v", got.State, tt.wantState)
			}
			if got.Platform != tt.wantPlatform {
				t.Errorf("Platform = %v, want %v", got.Platform, tt.wantPlatform)
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
