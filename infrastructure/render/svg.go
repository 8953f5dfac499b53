package render

import (
	"fmt"
	"strings"

	"anniversary-backend/application/ports"
)

const (
	cardWidth  = 1200
	cardHeight = 630
)

// PlaceholderSVG is the minimal card served when composition fails. Serving
// something is always preferable to failing the whole response.
const PlaceholderSVG = `<svg width="1200" height="630" xmlns="http://www.w3.org/2000/svg">` +
	`<rect width="100%" height="100%" fill="#1a1a2e"/>` +
	`<text x="50%" y="50%" font-size="36" fill="#ffffff" text-anchor="middle">Farcaster Anniversary</text>` +
	`</svg>`

// ComposeSVG draws the anniversary card for params. It renders one of three
// layouts: the initial prompt, the error card, or the result card.
func ComposeSVG(params ports.RenderParams) string {
	var body string
	switch {
	case params.IsInitial:
		body = initialBody()
	case params.IsError:
		body = errorBody(params.ErrorMessage)
	default:
		body = resultBody(params)
	}

	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="title" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
      <stop offset="0%%" stop-color="rgb(0,124,240)"/>
      <stop offset="100%%" stop-color="rgb(0,223,216)"/>
    </linearGradient>
  </defs>
  <rect width="100%%" height="100%%" fill="#1a1a2e"/>
  <rect x="75" y="75" width="%d" height="%d" rx="6" fill="rgba(0,0,0,0.5)" stroke="rgba(0,0,0,0.3)"/>
%s
</svg>`, cardWidth, cardHeight, cardWidth-150, cardHeight-150, body)
}

func initialBody() string {
	return `  <text x="50%" y="52%" font-size="48" font-weight="bold" fill="#ffffff" text-anchor="middle">Check Your Farcaster Anniversary</text>`
}

func errorBody(message string) string {
	return fmt.Sprintf(
		`  <text x="50%%" y="52%%" font-size="32" fill="#ff4d4d" text-anchor="middle">%s</text>`,
		escapeText(message),
	)
}

func resultBody(params ports.RenderParams) string {
	var b strings.Builder

	y := 180
	if params.Username != "" {
		fmt.Fprintf(&b,
			"  <text x=\"50%%\" y=\"%d\" font-size=\"32\" fill=\"#ffffff\" text-anchor=\"middle\">%s</text>\n",
			y, escapeText(params.Username))
		y += 60
	}

	fmt.Fprintf(&b,
		"  <text x=\"50%%\" y=\"%d\" font-size=\"56\" fill=\"url(#title)\" text-anchor=\"middle\">Your Farcaster Journey</text>\n",
		y)
	y += 80

	if params.AwesomeText != "" {
		fmt.Fprintf(&b,
			"  <text x=\"50%%\" y=\"%d\" font-size=\"34\" font-weight=\"bold\" fill=\"#ffffff\" text-anchor=\"middle\">%s</text>\n",
			y, escapeText(params.AwesomeText))
		y += 80
	}

	fmt.Fprintf(&b,
		"  <text x=\"50%%\" y=\"%d\" font-size=\"28\" fill=\"#ffffff\" text-anchor=\"middle\">Genesis Day: %s</text>\n",
		y, escapeText(params.JoinDate))
	y += 50

	fmt.Fprintf(&b,
		"  <text x=\"50%%\" y=\"%d\" font-size=\"28\" fill=\"#ffffff\" text-anchor=\"middle\">My Farcaster Age: %s</text>",
		y, escapeText(params.Anniversary))

	return b.String()
}

// escapeText keeps user-influenced strings from breaking out of the markup.
func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
