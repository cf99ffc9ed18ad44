package client

import "context"

// LabelClient queries a vision model with an image and returns the raw
// model response.
type LabelClient interface {
	Query(ctx context.Context, model, prompt string, image []byte) (string, error)
}
