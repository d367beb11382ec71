package search

import (
	"net/http"

	"errleak-demo/pkg/apperror"
)

type SearchQuery struct {
	Product string
}

// searchQuery pulls the product term out of the URL. Presence is what
// matters here, an empty but present value is a legitimate search term.
func searchQuery(r *http.Request) (SearchQuery, error) {
	values := r.URL.Query()
	if !values.Has("product") {
		return SearchQuery{}, apperror.New(apperror.Generic, "handler.search.query", "")
	}
	return SearchQuery{Product: values.Get("product")}, nil
}
