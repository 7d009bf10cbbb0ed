// Package safety screens user messages before they reach the model.
//
// Information Hiding:
// - Keyword tables and match rules hidden behind the Gate interface
// - Canned redirect text hidden in the verdict
package safety

import "strings"

// Category classifies why a message was flagged.
type Category string

const (
	CategoryPromptExtraction Category = "prompt_extraction"
	CategoryCredentialPhish  Category = "api_key_request"
	CategoryBrandDefamation  Category = "brand_defamation"
	CategoryOffTopic         Category = "off_topic"
	CategoryJailbreak        Category = "jailbreak_attempt"
)

// Verdict is the outcome of screening one message.
type Verdict struct {
	Flagged  bool
	Category Category
	Response string
}

// Gate screens a message and, when flagged, supplies the redirect
// response to return instead of invoking the model.
type Gate interface {
	Check(message string) Verdict
}

// KeywordGate flags messages by substring match against curated keyword
// tables. It is stateless and safe for concurrent use.
type KeywordGate struct{}

var _ Gate = (*KeywordGate)(nil)

// NewKeywordGate returns the default screening gate.
func NewKeywordGate() *KeywordGate {
	return &KeywordGate{}
}

var redirects = map[Category]string{
	CategoryPromptExtraction: "I'm here to help you find the perfect mobile phone! What features are you looking for?",
	CategoryCredentialPhish:  "I can't share any internal information. Would you like me to recommend some phones based on your budget?",
	CategoryBrandDefamation:  "I focus on factual comparisons rather than opinions. Would you like me to compare specific models objectively?",
	CategoryOffTopic:         "I specialize in mobile phone shopping. What kind of phone are you interested in?",
	CategoryJailbreak:        "I'm your mobile shopping assistant. What phone can I help you find today?",
}

var promptKeywords = []string{
	"system prompt", "your instructions", "your rules",
	"ignore your", "forget your", "reveal your",
	"what are you programmed", "show me your prompt",
	"initial instructions", "original instructions",
	"developer mode", "dan mode", "jailbreak",
}

var credentialKeywords = []string{
	"api key", "api token", "secret key", "credentials",
	"password", "access token", "authentication",
}

var defamationKeywords = []string{
	"trash", "sucks", "terrible", "worst", "hate",
	"never buy", "avoid", "garbage", "ripoff", "scam",
}

var defamationBrands = []string{
	"apple", "samsung", "oneplus", "xiaomi", "google", "vivo", "oppo", "realme",
}

var offTopicKeywords = []string{
	"hack", "crack", "pirate", "illegal",
	"medical advice", "health advice", "legal advice",
	"relationship", "dating", "politics", "religion",
}

// Check screens the message. A clean message returns a zero Verdict.
func (g *KeywordGate) Check(message string) Verdict {
	lower := strings.ToLower(message)

	if containsAny(lower, promptKeywords) {
		return flagged(CategoryPromptExtraction)
	}
	if containsAny(lower, credentialKeywords) {
		return flagged(CategoryCredentialPhish)
	}
	if containsAny(lower, defamationKeywords) && containsAny(lower, defamationBrands) {
		return flagged(CategoryBrandDefamation)
	}
	if containsAny(lower, offTopicKeywords) {
		return flagged(CategoryOffTopic)
	}
	return Verdict{}
}

// Redirect returns the canned response for a category, falling back to
// the generic jailbreak redirect for unknown categories.
func Redirect(c Category) string {
	if r, ok := redirects[c]; ok {
		return r
	}
	return redirects[CategoryJailbreak]
}

func flagged(c Category) Verdict {
	return Verdict{Flagged: true, Category: c, Response: Redirect(c)}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
