// Package api defines the Web API envelope contract shared by every method
// binding: URL resolution for method names, envelope parsing and validation,
// and the typed error taxonomy a call can produce.
package api

// APIURL is the public Web API base every method URL resolves against.
const APIURL = "https://slack.com/api/"

// MethodURL maps a Web API method name (e.g. "conversations.list") to its
// fully qualified endpoint URL.
func MethodURL(method string) string {
	return APIURL + method
}
