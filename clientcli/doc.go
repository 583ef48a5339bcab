// Package clientcli provides a client library and output formatting for
// talking to a running quickserve server.
//
// # Basic Usage
//
//	client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:3000"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	item, err := client.GetItem(ctx, "42")
//	if err != nil {
//		var apiErr *clientcli.APIError
//		if errors.As(err, &apiErr) {
//			fmt.Println(apiErr.StatusCode, apiErr.Message)
//		}
//	}
//
// # Configuration
//
// The endpoint defaults to http://localhost:3000 and may be set with the
// QUICKSERVE_ENDPOINT environment variable. Flags take precedence; see
// MergeConfig.
package clientcli
