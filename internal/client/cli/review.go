package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/common"
)

// Review composes a review of a company: a 1-5 rating, a comment and up to
// catalog.MaxReviewPhotos photo references. Reviews are acknowledged but
// not published anywhere.
func (a *App) Review(ctx context.Context, args []string) error {
	t := a.t()
	if len(args) != 1 {
		a.usage("review <id>")
		return nil
	}
	c, ok := catalog.CompanyByID(args[0])
	if !ok {
		a.println(t.CompanyNotFound)
		return nil
	}

	draft := catalog.ReviewDraft{CompanyID: c.ID}

	rating, err := getSimpleText(a.reader, t.EnterRating, a.out)
	if err != nil {
		return err
	}
	if draft.Rating, err = strconv.Atoi(rating); err != nil {
		a.println(t.PleaseSelectRating)
		return nil
	}

	if draft.Comment, err = GetMultiline(a.reader, t.EnterComment, a.out); err != nil {
		return err
	}

	a.println(t.Photos)
	photos, err := GetLines(a.reader)
	if err != nil {
		return err
	}
	for _, p := range photos {
		if err := draft.AddPhoto(p); err != nil {
			a.println(t.MaxPhotosReached)
			break
		}
	}

	switch err := draft.Validate(); {
	case errors.Is(err, catalog.ErrRatingRequired):
		a.println(t.PleaseSelectRating)
		return nil
	case errors.Is(err, catalog.ErrCommentRequired):
		a.println(t.PleaseWriteComment)
		return nil
	case errors.Is(err, catalog.ErrTooManyPhotos):
		a.println(t.MaxPhotosReached)
		return nil
	case err != nil:
		return err
	}

	id, err := common.MakeRandHexString(8)
	if err != nil {
		return err
	}
	a.log.Info(ctx, "review submitted", "review_id", id, "company", c.ID, "rating", draft.Rating, "photos", len(draft.Photos))
	a.println(t.ReviewSubmitted)
	return nil
}
