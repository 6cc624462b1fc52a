package backend

import (
	"context"
	"errors"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// PublicDocument fetches a shared document by its link token. No bearer
// token is sent; the share token in the path is the whole credential. An
// expired link answers 401, surfaced as ErrLinkExpired so the viewer can
// distinguish it from a missing document.
func (c *Client) PublicDocument(ctx context.Context, shareToken string) (*domain.PublicDocument, error) {
	var out domain.PublicDocument
	if err := c.get(ctx, "", "/public/view/"+shareToken, nil, &out); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrLinkExpired
		}
		return nil, err
	}
	for i := range out.Pages {
		out.Pages[i].ImageURL = c.absolutize(out.Pages[i].ImageURL)
	}
	return &out, nil
}
