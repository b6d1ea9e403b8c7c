// Package tmdb provides an HTTP client for the TMDB v3 catalog API.
//
// # Overview
//
// Marquee reads three list endpoints, all authenticated with an api_key
// query parameter and all returning a JSON envelope with a results array:
//
//   - GET /trending/movie/week
//   - GET /search/movie?query=<text>
//   - GET /discover/movie?page=<n>&with_genres=<id>
//
// The client returns whatever TMDB sends; capping and fallback rules live in
// the catalog package.
//
// # Errors
//
// A 401 maps to ErrUnauthorized. Any other status >= 400 is reported with the
// endpoint path, status code, and TMDB's status_message when present. A body
// that is not valid JSON yields a "decode response" error.
//
// # Usage Example
//
//	client, err := tmdb.NewClient(tmdb.Options{APIKey: key})
//	if err != nil {
//		return err
//	}
//	movies, err := client.Trending(ctx)
package tmdb
