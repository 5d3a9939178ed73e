package metadata

import (
	"context"

	"eduportal/pkg/ctxdata"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const traceIDHeader = "x-trace-id"

// NewMetadataUnaryInterceptor moves the caller's trace id into the context,
// minting one when the caller did not send it.
func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		traceID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(traceIDHeader); len(values) > 0 {
				traceID = values[0]
			}
		}
		if traceID == "" {
			traceID = uuid.NewString()
		}

		return handler(ctxdata.WithTraceID(ctx, traceID), req)
	}
}
