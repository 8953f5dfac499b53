// Package render names and draws the anniversary card. The card itself is a
// pure function of its parameters; swapping the drawing backend never
// changes what a reference means.
package render

import (
	"net/url"
	"strconv"

	"anniversary-backend/application/ports"
)

// URLRenderer implements ports.ImageRenderer by pointing at the card
// endpoint, parameterized with everything needed to reproduce the state
// deterministically.
type URLRenderer struct {
	baseURL string
}

// NewURLRenderer creates a renderer rooted at the app's base URL.
func NewURLRenderer(baseURL string) *URLRenderer {
	return &URLRenderer{baseURL: baseURL}
}

// ImageRef builds the card URL for params.
func (r *URLRenderer) ImageRef(params ports.RenderParams) (string, error) {
	q := url.Values{}
	q.Set("fid", params.FID)
	q.Set("joinDate", params.JoinDate)
	q.Set("anniversary", params.Anniversary)
	q.Set("isError", strconv.FormatBool(params.IsError))
	q.Set("errorMessage", params.ErrorMessage)
	q.Set("isInitial", strconv.FormatBool(params.IsInitial))
	q.Set("awesomeText", params.AwesomeText)
	q.Set("username", params.Username)

	u, err := url.Parse(r.baseURL)
	if err != nil {
		return "", err
	}
	u.Path = "/api/og"
	u.RawQuery = q.Encode()
	return u.String(), nil
}
