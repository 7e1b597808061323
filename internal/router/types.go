package router

// Category is a routing label from the allowed set.
type Category string

const (
	CategoryBanking   Category = "banking"
	CategoryCooking   Category = "cooking"
	CategoryFinance   Category = "finance"
	CategoryGenZ      Category = "genz"
	CategoryGPTMaster Category = "gpt_master"
	CategoryUnknown   Category = "unknown"
)

// Confidence qualifies how a classification was reached.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ClassifyOutput is the result of the standalone classifier.
type ClassifyOutput struct {
	Category   Category
	Confidence Confidence
}

// DispatchOutput is the routed reply envelope.
type DispatchOutput struct {
	Bot      Category
	Reply    string
	RoutedTo Category
}
