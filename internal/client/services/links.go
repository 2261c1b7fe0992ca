package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/shortener-client/internal/client/client"
	"github.com/dmitrijs2005/shortener-client/internal/client/models"
	"github.com/dmitrijs2005/shortener-client/internal/common"
)

// LinkService manages the current user's short links.
type LinkService interface {
	List(ctx context.Context) ([]models.ShortURL, error)
	Create(ctx context.Context, destination, alias string) (models.ShortURL, error)
	Update(ctx context.Context, id int64, destination string) error
	Delete(ctx context.Context, id int64) error
	Resolve(ctx context.Context, alias string) (string, error)
}

type linkService struct {
	client client.Client
}

func NewLinkService(c client.Client) LinkService {
	return &linkService{client: c}
}

func (s *linkService) List(ctx context.Context) ([]models.ShortURL, error) {
	return s.client.ListURLs(ctx)
}

func (s *linkService) Create(ctx context.Context, destination, alias string) (models.ShortURL, error) {
	destination, err := ValidateDestination(destination)
	if err != nil {
		return models.ShortURL{}, err
	}
	return s.client.CreateURL(ctx, destination, strings.TrimSpace(alias))
}

func (s *linkService) Update(ctx context.Context, id int64, destination string) error {
	destination, err := ValidateDestination(destination)
	if err != nil {
		return err
	}
	return s.client.UpdateURL(ctx, id, destination)
}

func (s *linkService) Delete(ctx context.Context, id int64) error {
	return s.client.DeleteURL(ctx, id)
}

func (s *linkService) Resolve(ctx context.Context, alias string) (string, error) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return "", fmt.Errorf("%w: empty alias", common.ErrNotFound)
	}
	return s.client.ResolveAlias(ctx, alias)
}

var validate = validator.New()

// ValidateDestination trims raw and checks that it is an absolute http(s)
// URL with a host.
func ValidateDestination(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if err := validate.Var(raw, "required,http_url"); err != nil {
		return "", fmt.Errorf("%w: %q must be an absolute http(s) URL", common.ErrInvalidURL, raw)
	}
	return raw, nil
}
