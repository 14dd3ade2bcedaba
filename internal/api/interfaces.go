package api

import (
	"context"
	"net/http"

	"github.com/ScribblerCoder/whale-admin/internal/model"
)

// Doer issues a single HTTP request. The default is a stock *http.Client; a
// host application may inject its own wrapped transport instead.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ImageCatalog defines the image-side operations of the whale admin API.
type ImageCatalog interface {
	// ListImageNames returns the plain image names for the dropdown, in server order
	ListImageNames(ctx context.Context) ([]string, error)

	// DescribeImages returns the full image records with size/created metadata
	DescribeImages(ctx context.Context) ([]model.Image, error)

	// RefreshImages asks the server to rebuild its image cache and returns the
	// server's status message
	RefreshImages(ctx context.Context) (string, error)
}

// ContainerAdmin defines the container-side admin operations.
type ContainerAdmin interface {
	ListContainers(ctx context.Context, page, perPage int) (*model.ContainerPage, error)
	RenewContainer(ctx context.Context, userID int) (string, error)
	RemoveContainer(ctx context.Context, userID int) (string, error)
}

// WhaleAPI is the full client surface consumed by the UI and the CLI.
type WhaleAPI interface {
	ImageCatalog
	ContainerAdmin
}
