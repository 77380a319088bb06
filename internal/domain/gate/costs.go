package gate

// Tool identifies a credit-gated tool.
type Tool string

const (
	ToolPhoneLookup   Tool = "phone_lookup"
	ToolEyeconLookup  Tool = "eyecon_lookup"
	ToolTempEmail     Tool = "temp_email"
	ToolYoutube       Tool = "youtube_download"
	ToolImageEnhance  Tool = "image_enhance"
	ToolTamashaOTP    Tool = "tamasha_otp"
	ToolLiveTV        Tool = "live_tv"
)

// costs is the fixed price list in credits. Unlisted tools cannot be charged.
var costs = map[Tool]int{
	ToolPhoneLookup:  1,
	ToolEyeconLookup: 1,
	ToolTempEmail:    1,
	ToolYoutube:      3,
	ToolImageEnhance: 2,
	ToolTamashaOTP:   2,
	ToolLiveTV:       1,
}

// Cost returns the credit price of a tool. ok is false for unknown tools.
func Cost(tool Tool) (int, bool) {
	cost, ok := costs[tool]
	return cost, ok
}

// Costs returns a copy of the full price list, keyed by tool id.
func Costs() map[string]int {
	out := make(map[string]int, len(costs))
	for tool, cost := range costs {
		out[string(tool)] = cost
	}
	return out
}
