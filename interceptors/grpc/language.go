package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/pitabwire/localized"
)

// LanguageUnaryInterceptor extracts the locale preferences supplied via
// metadata and sets them in the handler context.
func LanguageUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := localized.ExtractLanguageFromGrpcRequest(ctx)
		if l != nil {
			ctx = localized.ToContext(ctx, l)
		}

		return handler(ctx, req)
	}
}

// LanguageStreamInterceptor extracts the locale preferences supplied via
// metadata and sets them in the stream context.
func LanguageStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		l := localized.ExtractLanguageFromGrpcRequest(ctx)
		if l == nil {
			return handler(srv, ss)
		}

		ctx = localized.ToContext(ctx, l)

		// Wrap the original stream so handlers always receive a stream carrying the updated context.
		languageStream := &serverStreamWrapper{ctx, ss}

		return handler(srv, languageStream)
	}
}

// serverStreamWrapper carries the language-enriched context for the server stream.
type serverStreamWrapper struct {
	ctx context.Context
	grpc.ServerStream
}

// Context returns the language-enriched stream context.
func (s *serverStreamWrapper) Context() context.Context {
	return s.ctx
}
