package contracts

import "context"

// Storage is the pluggable object-store capability behind practitioner
// verification images: the MinIO implementation serves production, an
// in-memory one serves tests.
type Storage interface {
	PutBase64Object(ctx context.Context, objectKey string, encoded []byte, contentType string) (string, error)
	RemoveObject(ctx context.Context, objectKey string) error
}
