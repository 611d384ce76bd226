package content

import "testing"

func TestRespondToVoice(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    VoiceAction
	}{
		{"add to cart", "add milk to my cart", ActionAddToCart},
		{"put phrasing", "put some bread in there", ActionAddToCart},
		{"search", "find organic apples", ActionSearch},
		{"where phrasing", "where is the yogurt", ActionSearch},
		{"aura", "what's my aura today", ActionAura},
		{"mood phrasing", "I'm in a weird mood", ActionAura},
		{"recommend", "recommend something for dinner", ActionRecommend},
		{"checkout", "take me to checkout", ActionCheckout},
		{"bare cart request", "show my cart", ActionCheckout},
		{"help", "help me out", ActionHelp},
		{"unknown", "sing me a song", ActionUnknown},
		{"empty", "", ActionUnknown},
		{"case insensitive", "ADD EGGS PLEASE", ActionAddToCart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RespondToVoice(tt.command)
			if got.Action != tt.want {
				t.Errorf("RespondToVoice(%q).Action = %q, want %q", tt.command, got.Action, tt.want)
			}
			if got.Message == "" {
				t.Errorf("RespondToVoice(%q) returned empty message", tt.command)
			}
		})
	}
}
