package http

import (
	"integrated-bots/internal/bot/genz"
)

// --- Request DTOs ---

type askReq struct {
	Query string `json:"query" binding:"required"`
}

type genzReq struct {
	Query           string `json:"query"            binding:"required"`
	Platform        string `json:"platform"         binding:"omitempty,oneof=instagram_reel linkedin_post x_thread youtube_short whatsapp_status tiktok"`
	Duration        int    `json:"duration"         binding:"omitempty,min=5,max=120"`
	ContentType     string `json:"content_type"`
	AreaSpec        string `json:"area_spec"`
	Location        string `json:"location"`
	Language        string `json:"language"`
	Tone            string `json:"tone"`
	IncludeTrending *bool  `json:"include_trending"`
	CameraCues      *bool  `json:"deliver_camera_cues"`
	CompareReels    *bool  `json:"compare_with_reels"`
}

// toOptions overlays the request onto the default option set; absent
// booleans keep their default of true.
func (r genzReq) toOptions() genz.Options {
	opts := genz.DefaultOptions()
	if r.Platform != "" {
		opts.Platform = r.Platform
	}
	if r.Duration > 0 {
		opts.Duration = r.Duration
	}
	if r.ContentType != "" {
		opts.ContentType = r.ContentType
	}
	opts.AreaSpec = r.AreaSpec
	opts.Location = r.Location
	if r.Language != "" {
		opts.Language = r.Language
	}
	if r.Tone != "" {
		opts.Tone = r.Tone
	}
	if r.IncludeTrending != nil {
		opts.IncludeTrending = *r.IncludeTrending
	}
	if r.CameraCues != nil {
		opts.CameraCues = *r.CameraCues
	}
	if r.CompareReels != nil {
		opts.CompareReels = *r.CompareReels
	}
	return opts
}

// --- Response DTOs ---

type botResp struct {
	Bot   string `json:"bot"`
	Reply string `json:"reply"`
}

type genzResp struct {
	Reply            string `json:"reply"`
	LanguageDetected string `json:"language_detected"`
}
