package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			return int32(v)
		}
	}
	return fallback
}

// pageParams reads page/limit query values, falling back to defaults for
// missing or out-of-range input. Keeps newPagination's arithmetic safe.
func pageParams(r *http.Request, defaultLimit int32) (page, limit int32) {
	page = queryInt32(r, "page", 1)
	if page < 1 {
		page = 1
	}
	limit = queryInt32(r, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

type pagination struct {
	Total int32 `json:"total"`
	Page  int32 `json:"page"`
	Limit int32 `json:"limit"`
	Pages int32 `json:"pages"`
}

func newPagination(total, page, limit int32) pagination {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}
