package intake

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/janvolk/lostfound/internal/imagehost"
	"github.com/janvolk/lostfound/internal/imaging"
	"github.com/janvolk/lostfound/internal/metrics"
	"github.com/janvolk/lostfound/internal/model"
	"github.com/janvolk/lostfound/internal/store"
)

// ErrValidation marks submission errors caused by invalid input. Handlers map
// it to a client error; everything else is a server error.
var ErrValidation = errors.New("invalid submission")

// Classifier assigns a category label to an item. It never fails; on any
// trouble it falls back to a default label.
type Classifier interface {
	Classify(ctx context.Context, name, description string) string
}

// Submission is one incoming report, as parsed from the form.
type Submission struct {
	ItemType    string
	ItemName    string
	Description string
	Location    string
	ContactInfo string

	// Photo is the raw uploaded file, empty when the reporter attached none.
	Photo         []byte
	PhotoFilename string
}

// Pipeline orchestrates a single report: validate, optionally upload the
// photo, classify, persist.
type Pipeline struct {
	DB       *sql.DB
	Uploader imagehost.Uploader
	Tagger   Classifier
}

// Submit runs the pipeline for one submission and returns the stored item.
// There is no rollback across steps: if the insert fails after a successful
// upload, the hosted photo stays orphaned.
func (p *Pipeline) Submit(ctx context.Context, sub *Submission) (*model.Item, error) {
	if err := validate(sub); err != nil {
		return nil, err
	}

	item := &model.Item{
		ItemType:    sub.ItemType,
		ItemName:    sub.ItemName,
		Description: sub.Description,
		Location:    sub.Location,
		ContactInfo: sub.ContactInfo,
	}

	if len(sub.Photo) > 0 && sub.PhotoFilename != "" {
		photo, err := imaging.Process(sub.Photo)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		// Processing re-encodes the photo, so the hosted name carries the
		// processed extension, not the original one.
		url, err := p.Uploader.Upload(ctx, photo.Data, "photo"+photo.Ext, photo.ContentType)
		if err != nil {
			return nil, fmt.Errorf("uploading photo: %w", err)
		}
		item.ImageURL = url
	}

	item.Tag = p.Tagger.Classify(ctx, sub.ItemName, sub.Description)

	stored, err := store.InsertItem(ctx, p.DB, item)
	if err != nil {
		return nil, fmt.Errorf("storing item: %w", err)
	}

	metrics.ItemsCreated.WithLabelValues(stored.ItemType).Inc()
	return stored, nil
}

// validate checks the submission's field constraints before any side effect.
func validate(sub *Submission) error {
	if !model.ValidItemType(sub.ItemType) {
		return fmt.Errorf("%w: item_type must be %q or %q", ErrValidation, model.ItemTypeLost, model.ItemTypeFound)
	}
	if n := utf8.RuneCountInString(sub.ItemName); n < 2 || n > 100 {
		return fmt.Errorf("%w: item_name must be 2-100 characters", ErrValidation)
	}
	if utf8.RuneCountInString(sub.Description) > 500 {
		return fmt.Errorf("%w: description must be at most 500 characters", ErrValidation)
	}
	if utf8.RuneCountInString(sub.Location) < 2 {
		return fmt.Errorf("%w: location must be at least 2 characters", ErrValidation)
	}
	if sub.ContactInfo == "" {
		return fmt.Errorf("%w: contact_info is required", ErrValidation)
	}
	return nil
}
