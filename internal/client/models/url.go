package models

import "fmt"

// ShortURL is a short link owned by the current user.
type ShortURL struct {
	ID    int64  `json:"id"`
	URL   string `json:"url"`
	Alias string `json:"alias"`
}

func (u ShortURL) String() string {
	return fmt.Sprintf("[%d] %s -> %s", u.ID, u.Alias, u.URL)
}

// CreateURLRequest is the body of POST /url. An empty alias lets the server
// generate one.
type CreateURLRequest struct {
	URL   string `json:"url"`
	Alias string `json:"alias,omitempty"`
}

// UpdateURLRequest is the body of PATCH /url.
type UpdateURLRequest struct {
	URLID  int64  `json:"urlId"`
	NewURL string `json:"newUrl"`
}

// DeleteURLRequest is the body of DELETE /url.
type DeleteURLRequest struct {
	URLID int64 `json:"urlId"`
}
