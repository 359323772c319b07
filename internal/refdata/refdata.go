// Package refdata holds the static reference tables consumed by the
// analyzers. Everything here is read-only configuration data, built once and
// never mutated at runtime.
package refdata

// LegitimateDomains are known-good registrable domains. Membership or
// dot-suffix match is an explicit trust override for the URL pipeline and the
// comparison set for typosquatting detection.
var LegitimateDomains = []string{
	// Major tech companies
	"google.com", "gmail.com", "youtube.com",
	"facebook.com", "fb.com", "instagram.com", "whatsapp.com",
	"microsoft.com", "outlook.com", "office.com", "live.com",
	"apple.com", "icloud.com",
	"amazon.com", "aws.amazon.com",
	"twitter.com", "x.com",
	"linkedin.com",
	"netflix.com",
	"zoom.us",
	"dropbox.com",
	"github.com",
	"stackoverflow.com",
	"reddit.com",
	"wikipedia.org",

	// Financial services
	"paypal.com",
	"stripe.com",
	"visa.com",
	"mastercard.com",

	// E-commerce
	"ebay.com",
	"shopify.com",
	"walmart.com",
	"target.com",

	// Indian companies
	"flipkart.com",
	"paytm.com",
	"phonepe.com",
	"bharatpe.com",

	// Government and education
	"gov.in",
	"nic.in",
	"aktu.ac.in",

	// Other major sites
	"adobe.com",
	"salesforce.com",
	"oracle.com",
	"ibm.com",
	"cisco.com",
}

// SuspiciousTLDs are extensions with disproportionate abuse rates (free or
// cheaply registered zones).
var SuspiciousTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".gq",
	".xyz", ".click", ".link", ".top", ".work",
	".bid", ".webcam", ".party", ".trade",
}

// URLShorteners hide the destination of a link
var URLShorteners = []string{
	"bit.ly", "tinyurl.com", "goo.gl", "t.co", "ow.ly",
	"buff.ly", "adf.ly", "cutt.ly", "short.io", "rebrand.ly",
}

// SuspiciousPathKeywords are path segments typical of credential-harvesting
// pages.
var SuspiciousPathKeywords = []string{
	"verify", "login", "account", "secure", "update",
	"confirm", "validate", "authentication", "signin",
	"webscr", "banking", "suspended",
}

// KeywordCategories fixes the evaluation order of the keyword categories so
// evidence output is reproducible.
var KeywordCategories = []string{
	"high_priority", "urgency_tactics", "financial", "action_verbs",
}

// PhishingKeywords groups the rule-based keyword categories scored by the
// text analyzer. Each distinct match adds the same per-keyword weight.
var PhishingKeywords = map[string][]string{
	"high_priority": {
		"verify", "suspended", "urgent", "winner", "congratulations",
		"selected", "prize", "reward", "claim", "alert",
	},
	"urgency_tactics": {
		"immediately", "expire", "limited time", "act now",
		"today only", "final notice", "last chance", "within 24 hours",
		"before it's too late", "don't miss",
	},
	"financial": {
		"refund", "payment", "credit card", "bank account",
		"wire transfer", "paypal", "billing", "invoice",
		"transaction", "money", "cash", "deposit",
	},
	"action_verbs": {
		"click here", "confirm", "update", "reset", "validate",
		"download", "open attachment", "follow link", "sign in",
		"log in", "verify account",
	},
}

// SocialEngineeringPhrases are manipulation patterns scanned in order
var SocialEngineeringPhrases = []string{
	"verify your", "confirm your", "update your",
	"suspended", "locked", "blocked", "compromised",
	"unusual activity", "unauthorized access", "security alert",
}

// DisposableEmailDomains are throwaway mail providers
var DisposableEmailDomains = []string{
	"tempmail.com", "guerrillamail.com", "10minutemail.com",
	"throwaway.email", "mailinator.com", "temp-mail.org",
}

// MajorMailProviders is the comparison set for sender-domain typosquatting
var MajorMailProviders = []string{
	"gmail.com", "yahoo.com", "outlook.com", "hotmail.com",
}

// DangerousExtensions are attachment types commonly used to deliver malware
var DangerousExtensions = []string{
	".exe", ".zip", ".rar", ".scr", ".bat", ".vbs", ".js",
}

// AttachmentContextWords gate the dangerous-extension check: it only runs
// when the text actually talks about attachments.
var AttachmentContextWords = []string{
	"attachment", "attached", "open file", "download",
}

// GenericGreetings are impersonal salutations checked against the start of a
// message.
var GenericGreetings = []string{
	"dear customer", "dear user", "dear member", "valued customer",
}

// FallbackKeywords drive the keyword-density probability estimate used when
// the trained classifier is unavailable.
var FallbackKeywords = []string{
	"verify", "urgent", "suspended", "click here", "winner",
	"claim", "prize", "congratulations", "act now", "limited time",
	"confirm", "update", "reset", "locked", "blocked",
}

// ImageSuspiciousKeywords are scanned in text extracted from images
var ImageSuspiciousKeywords = []string{
	"verify", "urgent", "suspended", "winner", "prize",
	"claim", "payment", "transfer", "bitcoin", "wallet",
}

// PremiumPrefixesIndia are national-number prefixes of high-cost services
var PremiumPrefixesIndia = []string{"1860", "1600", "1868", "1869", "1900"}

// HighRiskCountryCodes are calling codes with elevated fraud-call volume
var HighRiskCountryCodes = []int32{234, 254, 233, 880}

// Stopwords filtered out of classifier features. A compact English list; the
// corpus texts are short so a full stopword inventory is unnecessary.
var Stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "and", "are", "as", "at", "be", "been", "by", "for",
		"from", "has", "have", "he", "her", "his", "i", "in", "is", "it",
		"its", "of", "on", "or", "our", "she", "that", "the", "their",
		"them", "they", "this", "to", "was", "we", "were", "will", "with",
		"you", "your",
	} {
		Stopwords[w] = struct{}{}
	}
}
