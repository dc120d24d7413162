package localized

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"google.golang.org/grpc/metadata"
)

// ExtractLanguageFromHTTPRequest reads the caller's locale preferences from
// an HTTP request: an explicit "lang" form value first, then the
// Accept-Language header in quality order.
func ExtractLanguageFromHTTPRequest(req *http.Request) []string {
	var locales []string
	if lang := req.FormValue("lang"); lang != "" {
		locales = append(locales, lang)
	}

	return append(locales, ExtractLanguageFromHTTPHeader(req.Header)...)
}

// ExtractLanguageFromHTTPHeader parses the Accept-Language header into
// locale codes ordered by quality weight.
func ExtractLanguageFromHTTPHeader(header http.Header) []string {
	acceptLanguageHeader := header.Get("Accept-Language")
	if acceptLanguageHeader == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguageHeader)
	if err != nil || len(tags) == 0 {
		return nil
	}

	locales := make([]string, 0, len(tags))
	for _, tag := range tags {
		locales = append(locales, tag.String())
	}
	return locales
}

// ExtractLanguageFromGrpcRequest reads locale preferences from incoming gRPC
// metadata's accept-language entry.
func ExtractLanguageFromGrpcRequest(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	header := md.Get("accept-language")
	if len(header) == 0 {
		return nil
	}
	return strings.Split(header[0], ",")
}
