package content

import "strings"

// VoiceAction is the command category a spoken phrase resolves to.
type VoiceAction string

const (
	ActionAddToCart VoiceAction = "add_to_cart"
	ActionSearch    VoiceAction = "search"
	ActionAura      VoiceAction = "aura"
	ActionRecommend VoiceAction = "recommend"
	ActionCheckout  VoiceAction = "checkout"
	ActionHelp      VoiceAction = "help"
	ActionUnknown   VoiceAction = "unknown"
)

// VoiceReply is the interpreted result of a voice command.
type VoiceReply struct {
	Action  VoiceAction `json:"action"`
	Message string      `json:"message"`
}

type voiceRule struct {
	keywords []string
	action   VoiceAction
	message  string
}

// Rules are checked in order, first match wins. Ordering matters: "add" must
// beat "cart" so "add milk to cart" is not treated as a checkout request.
var voiceRules = []voiceRule{
	{[]string{"add", "put"}, ActionAddToCart,
		"Sure, I've noted that for your cart. Check the cart panel to confirm."},
	{[]string{"find", "search", "look for", "where"}, ActionSearch,
		"Searching the catalog for you now."},
	{[]string{"aura", "mood", "feeling"}, ActionAura,
		"Your current aura is shown on the dashboard, tuned to how your day is going."},
	{[]string{"recommend", "suggest", "what should"}, ActionRecommend,
		"Based on your aura and shopping history, I've refreshed your recommendations."},
	{[]string{"checkout", "pay", "buy", "cart"}, ActionCheckout,
		"Heading to checkout. Your sustainability report will be ready there."},
	{[]string{"help", "how do"}, ActionHelp,
		"You can ask me to add items, search products, check your aura, or head to checkout."},
}

// RespondToVoice interprets a spoken phrase with a keyword rule table.
func RespondToVoice(command string) VoiceReply {
	lowered := strings.ToLower(command)
	for _, rule := range voiceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return VoiceReply{Action: rule.action, Message: rule.message}
			}
		}
	}
	return VoiceReply{
		Action:  ActionUnknown,
		Message: "Sorry, I didn't catch that. Try asking me to find a product or check your aura.",
	}
}
