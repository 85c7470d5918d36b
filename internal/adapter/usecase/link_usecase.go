package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"viciolinks/internal/core/domain"
	"viciolinks/internal/core/port"
	"viciolinks/internal/core/utm"
)

const (
	// DefaultLinkLimit caps link listings.
	DefaultLinkLimit = 100

	linkStatusActive = "active"
	auditCreate      = "create"
)

// LinkRecorder is notified of every stored link.
type LinkRecorder interface {
	LinkGenerated(linkType string)
}

// LinkUseCase provides business logic for link generation. It normalises
// the operator's input, allocates link ids and builds the tracking URL.
type LinkUseCase struct {
	repo     port.LinkRepository
	recorder LinkRecorder
	now      func() time.Time
}

// NewLinkUseCase creates a new usecase with the provided repository. The
// recorder may be nil.
func NewLinkUseCase(repo port.LinkRepository, recorder LinkRecorder) *LinkUseCase {
	return &LinkUseCase{repo: repo, recorder: recorder, now: time.Now}
}

// Generate normalises req, allocates the next link id, builds the full URL
// and stores the link together with an audit record. Sales links replace
// utm_id with the checkout parameters xcode, src and sck.
func (u *LinkUseCase) Generate(ctx context.Context, actor string, req domain.LinkRequest) (*domain.Link, error) {
	linkType := req.LinkType
	if linkType == "" {
		linkType = domain.LinkCaptacao
	}
	if !linkType.Valid() {
		return nil, fmt.Errorf("%w: unknown link_type %q", port.ErrInvalidInput, req.LinkType)
	}

	source := utm.Slugify(req.UTMSource)
	medium := utm.Slugify(req.UTMMedium)
	campaign := utm.NormalizeCampaign(utm.Slugify(req.UTMCampaign))
	content := utm.Slugify(req.UTMContent)
	term := utm.NormalizeTerm(utm.Slugify(req.UTMTerm))
	if source == "" || medium == "" || campaign == "" {
		return nil, fmt.Errorf("%w: utm_source, utm_medium and utm_campaign must not be empty", port.ErrInvalidInput)
	}

	// email sends are identified by their send date
	if strings.Contains(medium, "email") {
		if date := req.DynamicFields[domain.FieldDate]; date != "" {
			content = "email_d" + strings.ReplaceAll(date, "-", "_")
		}
	}

	n, err := u.repo.NextLinkNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("next link id: %w", err)
	}
	id := utm.FormatLinkID(n)

	params, vendas := utm.BuildTrackingParams(utm.TrackingInput{
		LinkType: linkType,
		Source:   source,
		Medium:   medium,
		Campaign: campaign,
		Content:  content,
		Term:     term,
		ID:       id,
	})

	custom := req.CustomParams
	if custom == nil {
		custom = map[string]string{}
	}
	var notes *string
	if req.Notes != nil && *req.Notes != "" {
		notes = req.Notes
	}

	link := domain.Link{
		ID:           id,
		LinkType:     linkType,
		BaseURL:      req.BaseURL,
		Path:         req.Path,
		FullURL:      utm.BuildFullURL(req.BaseURL, req.Path, params, custom),
		UTMSource:    source,
		UTMMedium:    medium,
		UTMCampaign:  campaign,
		UTMContent:   content,
		UTMTerm:      term,
		Src:          vendas.Src,
		Sck:          vendas.Sck,
		Xcode:        vendas.Xcode,
		CustomParams: custom,
		Notes:        notes,
		CreatedBy:    actor,
		CreatedAt:    u.now().UTC(),
		Status:       linkStatusActive,
	}
	audit := domain.Audit{
		EventID:   uuid.NewString(),
		LinkID:    id,
		Actor:     actor,
		Action:    auditCreate,
		CreatedAt: link.CreatedAt,
	}
	if err = u.repo.CreateLink(ctx, link, audit); err != nil {
		return nil, fmt.Errorf("store link %s: %w", id, err)
	}
	if u.recorder != nil {
		u.recorder.LinkGenerated(string(linkType))
	}
	return &link, nil
}

// List returns links newest first, at most DefaultLinkLimit of them.
func (u *LinkUseCase) List(ctx context.Context, q port.LinkQuery) ([]domain.Link, error) {
	if q.Limit <= 0 || q.Limit > DefaultLinkLimit {
		q.Limit = DefaultLinkLimit
	}
	return u.repo.ListLinks(ctx, q)
}

// Delete removes a link by id.
func (u *LinkUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.DeleteLink(ctx, id)
}
