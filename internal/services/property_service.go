package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/repositories"
	"karttem-admin/internal/transformers"
	"karttem-admin/internal/utils"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/listingsheet"
	"karttem-admin/pkg/logger"
)

const (
	scopeAll      = "all"
	scopeInactive = "inactive"

	msgPropertyCreated   = "Propiedad creada exitosamente"
	msgPropertyUpdated   = "Propiedad actualizada exitosamente"
	msgPropertyDeleted   = "Propiedad eliminada exitosamente"
	msgStatusUpdated     = "Estado actualizado exitosamente"
	msgPropertyNotSaved  = "Error al guardar la propiedad"
	msgStatusNotSaved    = "Error al actualizar el estado"
	msgPropertyNotDelete = "Error al eliminar la propiedad"
	msgOwnerMissing      = "El propietario seleccionado no existe"
)

type PropertyService struct {
	backend   PropertyBackend
	owners    OwnerBackend
	cache     repositories.ListingCache
	trans     transformers.PropertyTransformer
	validator validators.PropertyValidator
	images    ImageCompressor
	activity  *ActivityRecorder
	agency    string
	now       func() time.Time

	// listGen counts invalidations so a fetch that raced a mutation does not
	// repopulate the cache with the list it read before the change.
	// Only mutations made through this process are seen.
	listMu  sync.RWMutex
	listGen uint64
}

func NewPropertyService(
	backend PropertyBackend,
	owners OwnerBackend,
	cache repositories.ListingCache,
	trans transformers.PropertyTransformer,
	validator validators.PropertyValidator,
	images ImageCompressor,
	activity *ActivityRecorder,
	agency string,
) *PropertyService {
	return &PropertyService{
		backend:   backend,
		owners:    owners,
		cache:     cache,
		trans:     trans,
		validator: validator,
		images:    images,
		activity:  activity,
		agency:    agency,
		now:       time.Now,
	}
}

// List returns one page of listings for a status scope, filtered by q.
func (s *PropertyService) List(ctx context.Context, query models.PropertyListQuery, baseURL string, params url.Values) ([]models.PropertyRow, *models.PaginationMeta, error) {
	properties, err := s.fetch(ctx, query.Status)
	if err != nil {
		return nil, nil, err
	}
	properties = transformers.FilterProperties(properties, query.Query)

	page, meta := utils.Paginate(properties, query.Offset, query.Limit, baseURL, params)
	return s.trans.ToRows(page), meta, nil
}

// All returns every active listing.
func (s *PropertyService) All(ctx context.Context) ([]inmobiliaria.Property, error) {
	return s.fetch(ctx, scopeAll)
}

func (s *PropertyService) fetch(ctx context.Context, rawScope string) ([]inmobiliaria.Property, error) {
	scope := strings.ToLower(strings.TrimSpace(rawScope))
	if scope == "" {
		scope = scopeAll
	}

	var status inmobiliaria.Status
	if scope != scopeAll && scope != scopeInactive {
		st, err := s.validator.ValidateStatus(scope)
		if err != nil {
			return nil, err
		}
		status = st
	}

	if cached, ok := s.cache.Get(ctx, scope); ok {
		return cached, nil
	}
	gen := s.generation()

	var (
		properties []inmobiliaria.Property
		err        error
	)
	switch scope {
	case scopeAll:
		properties, err = s.backend.List(ctx)
	case scopeInactive:
		properties, err = s.backend.ListInactive(ctx)
	default:
		properties, err = s.backend.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}

	s.listMu.RLock()
	if s.listGen == gen {
		s.cache.Set(ctx, scope, properties)
	}
	s.listMu.RUnlock()
	return properties, nil
}

func (s *PropertyService) generation() uint64 {
	s.listMu.RLock()
	defer s.listMu.RUnlock()
	return s.listGen
}

// Get loads one listing with its owner resolved.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.PropertyRow, error) {
	property, err := s.backend.Get(ctx, id)
	if err != nil {
		if inmobiliaria.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgPropertyNotFound, err)
		}
		return nil, err
	}
	row := s.trans.ToRow(*property)
	return &row, nil
}

// Create validates the form, prepares the images and creates the listing.
func (s *PropertyService) Create(ctx context.Context, input *models.PropertyInput) (*inmobiliaria.Property, string, error) {
	form, err := s.prepareForm(ctx, input, "")
	if err != nil {
		return nil, "", err
	}

	property, _, err := s.backend.Create(ctx, form)
	if err != nil {
		logger.GlobalLogger.Errorf("creating property %q: %v", form.Title, err)
		return nil, "", apperrors.WithFallback(err, msgPropertyNotSaved)
	}

	s.invalidate(ctx)
	id := ""
	if property != nil {
		id = property.ID.String()
	}
	s.activity.Record(ctx, models.ActionCreate, models.EntityProperty, id, form.Title)
	return property, msgPropertyCreated, nil
}

// Update saves the listing; MainImageID may promote an image it already has.
func (s *PropertyService) Update(ctx context.Context, id string, input *models.PropertyInput) (*inmobiliaria.Property, string, error) {
	form, err := s.prepareForm(ctx, input, id)
	if err != nil {
		return nil, "", err
	}

	property, _, err := s.backend.Update(ctx, id, form)
	if err != nil {
		logger.GlobalLogger.Errorf("updating property %s: %v", id, err)
		return nil, "", apperrors.WithFallback(err, msgPropertyNotSaved)
	}

	s.invalidate(ctx)
	s.activity.Record(ctx, models.ActionUpdate, models.EntityProperty, id, form.Title)
	return property, msgPropertyUpdated, nil
}

// prepareForm validates the input and settles the main image. id is empty on create.
// At most one main instruction reaches the backend: a flagged upload drops
// MainImageID, and on update the first upload only becomes main when the stored
// listing has none.
func (s *PropertyService) prepareForm(ctx context.Context, input *models.PropertyInput, id string) (*inmobiliaria.PropertyForm, error) {
	form, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}
	if err := s.resolveOwner(ctx, form.OwnerID); err != nil {
		return nil, err
	}

	flagged := hasFlaggedUpload(input.Images)
	if id == "" || flagged {
		form.MainImageID = ""
	}

	firstIsMain := id == ""
	if id != "" && !flagged && form.MainImageID == "" && len(input.Images) > 0 {
		stored, err := s.backend.Get(ctx, id)
		if err != nil {
			if inmobiliaria.IsNotFound(err) {
				return nil, apperrors.NewNotFoundError(apperrors.MsgPropertyNotFound, err)
			}
			return nil, err
		}
		firstIsMain = !hasMainImage(stored)
	}

	form.Images = prepareImages(s.images, input.Images, firstIsMain)
	return form, nil
}

// resolveOwner checks that a selected owner exists before the listing is sent.
func (s *PropertyService) resolveOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return nil
	}
	if _, err := s.owners.Get(ctx, ownerID); err != nil {
		if inmobiliaria.IsNotFound(err) {
			return apperrors.NewValidationError(map[string]string{"owner_id": msgOwnerMissing})
		}
		return err
	}
	return nil
}

// UpdateStatus moves a listing to another status and returns the refreshed row.
// The row is nil when the refresh fails after a successful change.
func (s *PropertyService) UpdateStatus(ctx context.Context, id, rawStatus string) (*models.PropertyRow, string, error) {
	status, err := s.validator.ValidateStatus(rawStatus)
	if err != nil {
		return nil, "", err
	}

	if _, err := s.backend.UpdateStatus(ctx, id, status); err != nil {
		logger.GlobalLogger.Errorf("changing status of property %s: %v", id, err)
		return nil, "", apperrors.WithFallback(err, msgStatusNotSaved)
	}
	s.invalidate(ctx)
	s.activity.Record(ctx, models.ActionStatusChange, models.EntityProperty, id, transformers.StatusLabel(status))

	property, err := s.backend.Get(ctx, id)
	if err != nil {
		if inmobiliaria.IsUnauthorized(err) {
			return nil, "", err
		}
		logger.GlobalLogger.Warnf("reloading property %s after status change: %v", id, err)
		return nil, msgStatusUpdated, nil
	}
	row := s.trans.ToRow(*property)
	return &row, msgStatusUpdated, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.backend.Delete(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("deleting property %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgPropertyNotDelete)
	}
	s.invalidate(ctx)
	s.activity.Record(ctx, models.ActionDelete, models.EntityProperty, id, "")
	return msgPropertyDeleted, nil
}

// ExportSheet renders the listing sheet PDF and its download name.
func (s *PropertyService) ExportSheet(ctx context.Context, id string) (string, []byte, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := listingsheet.Render(s.sheetFor(row))
	if err != nil {
		logger.GlobalLogger.Errorf("rendering sheet for property %s: %v", id, err)
		return "", nil, err
	}
	return SheetFilename(row.Title), data, nil
}

func (s *PropertyService) sheetFor(row *models.PropertyRow) *listingsheet.Sheet {
	p := &row.Property
	now := s.now()

	sheet := &listingsheet.Sheet{
		Agency:      s.agency,
		Date:        transformers.LongDateES(now),
		Year:        now.Year(),
		Title:       p.Title,
		Type:        row.TypeLabel,
		Status:      row.StatusLabel,
		Price:       row.PriceDisplay,
		Location:    joinNonEmpty(", ", p.Address, p.City, p.Province),
		Description: p.Description,
		Services:    listingsheet.Services(p),
		Amenities:   listingsheet.Amenities(p),
	}
	if p.CoveredArea > 0 {
		sheet.CoveredArea = transformers.FormatNumberES(float64(p.CoveredArea)) + " m²"
	}
	if p.TotalArea > 0 {
		sheet.TotalArea = transformers.FormatNumberES(float64(p.TotalArea)) + " m²"
	}
	if p.Bedrooms > 0 {
		sheet.Bedrooms = fmt.Sprintf("%d", p.Bedrooms)
	}
	if p.Bathrooms > 0 {
		sheet.Bathrooms = fmt.Sprintf("%d", p.Bathrooms)
	}
	if p.Owner != nil {
		sheet.Owner = p.Owner.Name
	}
	return sheet
}

// SheetFilename names the PDF after the listing title.
func SheetFilename(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "Propiedad"
	}
	return name + ".pdf"
}

func (s *PropertyService) invalidate(ctx context.Context) {
	s.listMu.Lock()
	s.listGen++
	s.listMu.Unlock()
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.GlobalLogger.Warnf("failed to invalidate property lists: %v", err)
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
