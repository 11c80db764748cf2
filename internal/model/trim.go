package model

import "fmt"

// Defaults applied when the client omits optional trim fields.
const (
	DefaultEndTime      = 7.0
	DefaultFadeDuration = 0.5
)

// TrimRequest is the body of POST /trim. EndTime and FadeDuration are
// pointers so an omitted field can be told apart from an explicit zero.
type TrimRequest struct {
	VideoURL     string   `json:"video_url" validate:"required,url"`
	StartTime    float64  `json:"start_time" validate:"gte=0"`
	EndTime      *float64 `json:"end_time" validate:"omitempty,gte=0"`
	FadeDuration *float64 `json:"fade_duration" validate:"omitempty,gte=0"`
}

// TrimParams is a fully-defaulted trim request ready for the worker.
type TrimParams struct {
	VideoURL string
	Start    float64
	End      float64
	Fade     float64
}

// Params applies defaults and flattens the request.
func (r *TrimRequest) Params() TrimParams {
	p := TrimParams{
		VideoURL: r.VideoURL,
		Start:    r.StartTime,
		End:      DefaultEndTime,
		Fade:     DefaultFadeDuration,
	}
	if r.EndTime != nil {
		p.End = *r.EndTime
	}
	if r.FadeDuration != nil {
		p.Fade = *r.FadeDuration
	}
	return p
}

// Validate enforces the range relationships that keep the computed fade
// start non-negative. Violations would otherwise reach ffmpeg as undefined
// filter parameters.
func (p TrimParams) Validate() error {
	if p.End <= p.Start {
		return fmt.Errorf("end_time (%g) must be greater than start_time (%g)", p.End, p.Start)
	}
	if p.Fade > p.End-p.Start {
		return fmt.Errorf("fade_duration (%g) must not exceed the trimmed range (%g)", p.Fade, p.End-p.Start)
	}
	return nil
}

// TrimResponse is the success body of POST /trim.
type TrimResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"video_url"`
	Message  string `json:"message"`
}
