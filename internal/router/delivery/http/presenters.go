package http

import (
	"integrated-bots/internal/router"
)

// --- Request DTOs ---

type chatReq struct {
	Query string `json:"query" binding:"required"`
}

type classifyReq struct {
	Query  string `json:"query" binding:"required"`
	UseLLM bool   `json:"use_llm"`
}

// --- Response DTOs ---

type routedResp struct {
	Bot      string `json:"bot"`
	Reply    string `json:"reply"`
	RoutedTo string `json:"routed_to"`
}

func newRoutedResp(out router.DispatchOutput) routedResp {
	return routedResp{
		Bot:      string(out.Bot),
		Reply:    out.Reply,
		RoutedTo: string(out.RoutedTo),
	}
}

type classifyResp struct {
	Category   string `json:"category"`
	Bot        string `json:"bot"`
	Confidence string `json:"confidence"`
}

func newClassifyResp(out router.ClassifyOutput) classifyResp {
	return classifyResp{
		Category:   string(out.Category),
		Bot:        string(out.Category),
		Confidence: string(out.Confidence),
	}
}
