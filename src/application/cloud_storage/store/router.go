package store

import (
	"context"
	"strings"

	"sam-audio-server/src/application/cloud_storage/entity"
	"sam-audio-server/src/lib/cerr"
)

var _ entity.FileStore = Router{}

type Route struct {
	Prefix string
	Store  entity.FileStore
}

func GoogleRoute(fileStore entity.FileStore) Route {
	return Route{Prefix: GoogleStorageHost + "/", Store: fileStore}
}

func S3Route(fileStore entity.FileStore) Route {
	return Route{Prefix: S3Scheme, Store: fileStore}
}

// Router sends each URL to the first route whose prefix matches it.
type Router struct {
	routes []Route
}

func NewRouter(routes ...Route) Router {
	configured := []Route{}
	for _, route := range routes {
		if route.Store != nil {
			configured = append(configured, route)
		}
	}

	return Router{
		routes: configured,
	}
}

func (r Router) GetFile(ctx context.Context, url string) ([]byte, error) {
	fileStore, err := r.storeFor(url)
	if err != nil {
		return nil, err
	}

	return fileStore.GetFile(ctx, url)
}

func (r Router) WriteFile(ctx context.Context, url string, fileContent []byte) error {
	fileStore, err := r.storeFor(url)
	if err != nil {
		return err
	}

	return fileStore.WriteFile(ctx, url, fileContent)
}

func (r Router) storeFor(url string) (entity.FileStore, error) {
	for _, route := range r.routes {
		if strings.HasPrefix(url, route.Prefix) {
			return route.Store, nil
		}
	}

	return nil, cerr.Field("url", url).Error("No file store is configured for this URL")
}
