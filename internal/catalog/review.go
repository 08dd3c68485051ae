package catalog

import (
	"errors"
	"strings"
)

const MaxReviewPhotos = 5

var (
	ErrRatingRequired  = errors.New("rating must be between 1 and 5")
	ErrCommentRequired = errors.New("comment is required")
	ErrTooManyPhotos   = errors.New("too many photos")
)

// ReviewDraft is a review being composed. Photos are references to
// device media; they are never uploaded.
type ReviewDraft struct {
	CompanyID string
	Rating    int
	Comment   string
	Photos    []string
}

func (d ReviewDraft) Validate() error {
	if d.Rating < 1 || d.Rating > 5 {
		return ErrRatingRequired
	}
	if strings.TrimSpace(d.Comment) == "" {
		return ErrCommentRequired
	}
	if len(d.Photos) > MaxReviewPhotos {
		return ErrTooManyPhotos
	}
	return nil
}

// AddPhoto attaches ref unless the draft is full.
func (d *ReviewDraft) AddPhoto(ref string) error {
	if len(d.Photos) >= MaxReviewPhotos {
		return ErrTooManyPhotos
	}
	d.Photos = append(d.Photos, ref)
	return nil
}

func (d *ReviewDraft) RemovePhoto(i int) {
	if i < 0 || i >= len(d.Photos) {
		return
	}
	d.Photos = append(d.Photos[:i], d.Photos[i+1:]...)
}
