// Package gramkit provides a thin Instagram API client built from composable
// request/response middleware around a pluggable transport adapter:
//
//   - OAuth credential injection (parameter, bearer header, or both)
//   - Request parameter URL-encoding and optional request signing
//   - Content-type fix-up for servers that mislabel JSON bodies
//   - JSON parsing with a configurable parse function
//   - Recursive object-mapping of parsed bodies (Mash)
//   - Typed error raising from HTTP status codes
//   - Prometheus metrics and lightweight structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - Fixed, load-bearing stage order: errors are raised only after parsing,
//     so error payloads stay inspectable
//   - Safe concurrent use of a single *Client instance
//   - Extensibility via user supplied middleware and pluggable transports
//
// Typical usage:
//
//	client := gramkit.New(
//	    gramkit.WithClientID("your-client-id"),
//	    gramkit.WithAccessToken("user-access-token"),
//	)
//	resp, err := client.User(ctx, "self")
//	if err != nil {
//	    // errors are typed: gramkit.IsNotFound(err), gramkit.IsRateLimited(err), ...
//	}
//	username := resp.Data().String("username")
//
// The library performs no retries, caching or rate limiting; retry policy is
// the caller's responsibility and timeouts belong to the transport adapter
// (WithTimeout, or a custom Transport).
package gramkit
