package video_test

import (
	"context"
	"testing"

	"video-catalog-api/internal/domain/video"
	"video-catalog-api/internal/utils/platformerrors"
)

func TestNewFilter_Defaults(t *testing.T) {
	f := video.NewFilter()
	if f.Page != 1 {
		t.Errorf("expected page 1, got %d", f.Page)
	}
	if f.Limit != video.DefaultPageSize {
		t.Errorf("expected limit %d, got %d", video.DefaultPageSize, f.Limit)
	}
	if f.Category != nil {
		t.Errorf("expected no category filter, got %q", *f.Category)
	}
}

func TestFilter_Offset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 12, 0},
		{2, 12, 12},
		{3, 5, 10},
		{10, 1, 9},
	}
	for _, tt := range tests {
		f := video.NewFilter().WithPage(tt.page).WithLimit(tt.limit)
		if got := f.Offset(); got != tt.want {
			t.Errorf("page=%d limit=%d: expected offset %d, got %d", tt.page, tt.limit, tt.want, got)
		}
	}
}

func TestFilter_Validate(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		wantErr     bool
	}{
		{"defaults", 1, video.DefaultPageSize, false},
		{"zero page", 0, 12, true},
		{"negative page", -3, 12, true},
		{"zero limit", 1, 0, true},
		{"limit one", 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := video.NewFilter().WithPage(tt.page).WithLimit(tt.limit)
			err := f.Validate(context.Background())
			if tt.wantErr {
				if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
