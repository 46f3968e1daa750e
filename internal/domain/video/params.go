package video

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"video-catalog-api/internal/utils/platformerrors"
)

// Limits count characters, not bytes, matching the VARCHAR column widths.
const (
	maxTitleLen      = 255
	maxLocatorLen    = 500
	maxTypeLen       = 100
	maxResolutionLen = 50
	maxCategoryLen   = 255
)

// durationPattern matches HH:MM:SS with minutes and seconds below 60.
var durationPattern = regexp.MustCompile(`^\d{2}:[0-5]\d:[0-5]\d$`)

// CreateParams contains parameters for creating a new catalog entry.
// Category carries a category name; the service resolves it to an identifier.
type CreateParams struct {
	Title       string
	Description *string
	Src         string
	Type        string
	Poster      *string
	Duration    *string
	Resolution  *string
	Size        *int64
	Status      *Status
	Category    *string
	UploadedBy  *int64
}

// Validate checks the create payload field by field, short-circuiting on the
// first violation. Pure; no store access.
func (p CreateParams) Validate(ctx context.Context) error {
	if strings.TrimSpace(p.Title) == "" {
		return validationError(ctx, "title is required", "video-validate-title-001")
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return validationError(ctx, fmt.Sprintf("title must be at most %d characters", maxTitleLen), "video-validate-title-002")
	}
	if strings.TrimSpace(p.Src) == "" {
		return validationError(ctx, "src is required", "video-validate-src-001")
	}
	if err := validateLocator(ctx, "src", p.Src); err != nil {
		return err
	}
	if strings.TrimSpace(p.Type) == "" {
		return validationError(ctx, "type is required", "video-validate-type-001")
	}
	if utf8.RuneCountInString(p.Type) > maxTypeLen {
		return validationError(ctx, fmt.Sprintf("type must be at most %d characters", maxTypeLen), "video-validate-type-002")
	}
	return p.validateOptional(ctx)
}

// validateOptional holds the rules shared between create and update payloads.
func (p CreateParams) validateOptional(ctx context.Context) error {
	if p.Poster != nil {
		if err := validateLocator(ctx, "poster", *p.Poster); err != nil {
			return err
		}
	}
	if p.Duration != nil && !durationPattern.MatchString(*p.Duration) {
		return validationError(ctx, "duration must be formatted HH:MM:SS", "video-validate-duration-001")
	}
	if p.Resolution != nil && utf8.RuneCountInString(*p.Resolution) > maxResolutionLen {
		return validationError(ctx, fmt.Sprintf("resolution must be at most %d characters", maxResolutionLen), "video-validate-resolution-001")
	}
	if p.Size != nil && *p.Size < 0 {
		return validationError(ctx, "size must be a non-negative integer", "video-validate-size-001")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return validationError(ctx, "status must be one of active, inactive, archived", "video-validate-status-001")
	}
	if p.Category != nil {
		if strings.TrimSpace(*p.Category) == "" {
			return validationError(ctx, "category must not be empty", "video-validate-category-001")
		}
		if utf8.RuneCountInString(*p.Category) > maxCategoryLen {
			return validationError(ctx, "category must be at most 255 characters", "video-validate-category-002")
		}
	}
	return nil
}

// UpdateParams contains the sparse field set of a partial update. A nil field
// means "leave unchanged"; JSON null decodes to nil as well, so the API does
// not support clearing a field back to null (matching the original backend).
type UpdateParams struct {
	Title       *string
	Description *string
	Src         *string
	Type        *string
	Poster      *string
	Duration    *string
	Resolution  *string
	Size        *int64
	Status      *Status
	Category    *string
	UploadedBy  *int64
}

// HasFields reports whether at least one recognized field is present.
func (p UpdateParams) HasFields() bool {
	return p.Title != nil || p.Description != nil || p.Src != nil ||
		p.Type != nil || p.Poster != nil || p.Duration != nil ||
		p.Resolution != nil || p.Size != nil || p.Status != nil ||
		p.Category != nil || p.UploadedBy != nil
}

// Validate applies the per-field create rules to every present field and
// rejects payloads carrying no recognized field at all.
func (p UpdateParams) Validate(ctx context.Context) error {
	if !p.HasFields() {
		return validationError(ctx, "no fields to update", "video-validate-nofields-001")
	}
	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			return validationError(ctx, "title must not be empty", "video-validate-title-001")
		}
		if utf8.RuneCountInString(*p.Title) > maxTitleLen {
			return validationError(ctx, fmt.Sprintf("title must be at most %d characters", maxTitleLen), "video-validate-title-002")
		}
	}
	if p.Src != nil {
		if strings.TrimSpace(*p.Src) == "" {
			return validationError(ctx, "src must not be empty", "video-validate-src-001")
		}
		if err := validateLocator(ctx, "src", *p.Src); err != nil {
			return err
		}
	}
	if p.Type != nil {
		if strings.TrimSpace(*p.Type) == "" {
			return validationError(ctx, "type must not be empty", "video-validate-type-001")
		}
		if utf8.RuneCountInString(*p.Type) > maxTypeLen {
			return validationError(ctx, fmt.Sprintf("type must be at most %d characters", maxTypeLen), "video-validate-type-002")
		}
	}

	shared := CreateParams{
		Poster:     p.Poster,
		Duration:   p.Duration,
		Resolution: p.Resolution,
		Size:       p.Size,
		Status:     p.Status,
		Category:   p.Category,
	}
	return shared.validateOptional(ctx)
}

func validateLocator(ctx context.Context, field, value string) error {
	if utf8.RuneCountInString(value) > maxLocatorLen {
		return validationError(ctx, fmt.Sprintf("%s must be at most %d characters", field, maxLocatorLen), "video-validate-"+field+"-len-001")
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return validationError(ctx, fmt.Sprintf("%s must be a valid URI", field), "video-validate-"+field+"-uri-001")
	}
	return nil
}

func validationError(ctx context.Context, message, code string) error {
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerDomain,
		platformerrors.ErrorTypeValidation,
		message,
		nil,
		code,
	)
}
