package handlers

import (
	"net/http"
	"strconv"
)

// paramInt reads a pat path parameter, e.g. paramInt(r, "id") for "/x/:id".
func paramInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(":" + name))
}

// currentUserID returns the authenticated user's id placed in the request
// context by the auth middleware, or 0 on anonymous requests.
func currentUserID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}

func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}
