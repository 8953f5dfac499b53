// Package frames implements the frame interaction protocol: the action
// envelope posted by clients and the response state machine rendered back.
package frames

// Button actions recognized by frame clients.
const (
	ActionPost = "post" // submit back to this frame
	ActionLink = "link" // open an external URL
)

// Views of the frame state machine. The machine's memory is entirely
// client-side: each response carries its view in State and the client posts
// it back with the next action.
const (
	ViewInitial = "initial"
	ViewResult  = "result"
	ViewError   = "error"
)

// Button is one caller-visible action. Order matters: index 1..N maps to the
// buttonIndex of the next submit.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
}

// Response is the outbound frame payload. OGImage duplicates Image for
// link-preview consumers.
type Response struct {
	Image       string   `json:"image"`
	Buttons     []Button `json:"buttons"`
	State       string   `json:"state,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	OGImage     string   `json:"ogImage"`
}

// ActionEnvelope is the inbound POST body. The payload is untrusted by
// protocol convention but trusted structurally; there is no signature
// verification.
type ActionEnvelope struct {
	UntrustedData UntrustedData `json:"untrustedData"`
}

// UntrustedData carries the acting user's FID and the pressed button.
// No view renders more than three buttons, so buttonIndex is bounded 1..3.
type UntrustedData struct {
	FID         int64  `json:"fid"`
	ButtonIndex int    `json:"buttonIndex" validate:"omitempty,min=1,max=3"`
	State       string `json:"state,omitempty"`
}
