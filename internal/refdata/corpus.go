package refdata

// TrainingSample is one labeled text in the classifier corpus
type TrainingSample struct {
	Text     string
	Phishing bool
}

// TrainingCorpus is the fixed labeled corpus the text classifier is trained
// on at startup. Roughly balanced phishing vs legitimate short texts.
func TrainingCorpus() []TrainingSample {
	samples := make([]TrainingSample, 0, len(phishingSamples)+len(legitimateSamples))
	for _, t := range phishingSamples {
		samples = append(samples, TrainingSample{Text: t, Phishing: true})
	}
	for _, t := range legitimateSamples {
		samples = append(samples, TrainingSample{Text: t, Phishing: false})
	}
	return samples
}

var phishingSamples = []string{
	// Account suspension scams
	"urgent your account has been suspended verify immediately to restore access",
	"action required your paypal account will be closed verify now",
	"warning your bank account is locked click here to unlock",
	"suspended account verify your identity within 24 hours",
	"your account has been compromised reset password immediately",
	"final notice your account will be terminated verify now",
	"security alert unusual activity detected confirm identity",
	"account verification required click link immediately",

	// Prize and lottery scams
	"congratulations you won 1 million dollars claim your prize now",
	"you are the lucky winner click to collect your reward",
	"claim your prize today limited time offer expires soon",
	"winner notification you have been selected for cash prize",
	"lottery win confirm your details to receive payment",
	"you won click here to claim your reward immediately",
	"congratulations winner claim prize before expiry",

	// Banking alerts
	"urgent bank notification verify your credit card details",
	"unusual activity detected on your account confirm transaction",
	"your card has been blocked update information immediately",
	"refund pending click here to claim your money back",
	"payment failed update your billing information now",
	"bank alert verify your account to prevent closure",
	"credit card suspended update details immediately",

	// Tax and government scams
	"irs tax refund pending claim your refund today",
	"government grant awarded verify eligibility immediately",
	"tax notice urgent action required click to respond",
	"refund approved from revenue department claim now",
	"tax refund waiting confirm details to receive money",

	// Generic phishing patterns
	"verify your email address click this link immediately",
	"update your payment method to avoid service interruption",
	"confirm your identity to prevent account closure",
	"reset your password your account security is at risk",
	"click here to validate your credentials urgent",
	"limited time offer act now before it expires",
	"your package delivery failed update address immediately",
	"security alert unusual login attempt verify activity",
	"account verification required click link to confirm",
	"update required your information is outdated verify now",

	// Advanced phishing
	"dear valued customer urgent security update required",
	"this is final notice verify within 48 hours",
	"immediate attention needed your account at risk",
	"you have 1 pending refund claim it before expiry",
	"wire transfer failed resubmit bank details",
	"upgrade your account today special discount expires tonight",
	"confirm subscription renewal to avoid charges",
	"your order has been shipped track package click here",
	"invoice attached please review and pay immediately",
	"password reset requested click to confirm change",

	// Social engineering
	"help i am stranded send money urgently",
	"investment opportunity guaranteed returns act fast",
	"your friend sent you money claim it now",
	"charity donation request help people in need",
	"job offer work from home earn thousands weekly",

	// Variations heavy on urgency
	"suspended verify suspended account verify click now",
	"urgent urgent verify account immediately click here",
	"winner prize claim lottery won congratulations act now",
	"bank account locked update verify credit card details",
	"refund pending tax irs claim money transfer immediately",
	"confirm payment details expired update billing information",
	"security breach detected reset password click link",
	"winner selected claim reward before midnight expires",
}

var legitimateSamples = []string{
	// Order confirmations
	"your order has been confirmed delivery expected in 3-5 days",
	"thank you for your purchase order number 12345",
	"order shipped tracking number available in your account",
	"receipt for your recent purchase thank you for shopping",
	"your subscription has been renewed thank you",
	"order confirmation your items are being prepared",
	"shipment notification your package is on the way",

	// Meeting invitations
	"meeting scheduled for tomorrow at 2pm please confirm attendance",
	"invitation team sync call next week",
	"reminder project review meeting on friday",
	"calendar invite quarterly planning session",
	"you have been invited to join the webinar",
	"meeting request from john for next monday",
	"conference call scheduled please join at 3pm",

	// Newsletters
	"weekly newsletter latest updates and announcements",
	"monthly digest top articles and news from our blog",
	"new features released check out what is new",
	"product updates and improvements this month",
	"company newsletter employee spotlight and events",
	"newsletter subscribe to receive weekly updates",
	"blog post notification new article published",

	// System notifications
	"your password was successfully changed",
	"login from new device notification for your security",
	"two factor authentication enabled on your account",
	"subscription renewed automatically thank you",
	"account settings updated successfully",
	"profile information updated confirmation",
	"notification settings changed as requested",

	// Professional emails
	"project status update all tasks on track",
	"quarterly report attached for your review",
	"invoice for services rendered payment terms net 30",
	"contract renewal discussion next steps",
	"performance review scheduled please prepare documents",
	"team meeting notes from yesterday session",
	"project milestone completed moving to next phase",

	// Customer service
	"thank you for contacting support ticket number assigned",
	"your issue has been resolved please confirm",
	"feedback request help us improve our service",
	"appointment confirmed see you soon",
	"shipping notification your package is on the way",
	"support ticket update we are working on your request",
	"customer service response to your inquiry",

	// Social updates
	"someone liked your post check it out",
	"you have new connections on linkedin",
	"weekly activity summary from your network",
	"comment on your post view conversation",
	"friend request pending review profile",
	"photo tagged notification from friend",
	"group invitation join our community",

	// Normal correspondence
	"meeting notes attached for reference",
	"following up on our conversation last week",
	"document shared with you view and edit access",
	"event reminder seminar starts in one hour",
	"welcome to the team orientation schedule attached",
	"thank you for attending the session yesterday",
	"project files shared in team folder",

	// Educational
	"course enrollment confirmed access materials online",
	"assignment due date reminder submit by friday",
	"grade posted for recent exam view results",
	"new course available registration now open",
	"library notification book hold ready for pickup",
	"class schedule updated check your timetable",
	"assignment feedback available review comments",

	// General updates
	"software update available install at convenience",
	"maintenance scheduled system downtime tonight",
	"new policy announcement please review document",
	"benefits enrollment period opens next month",
	"holiday schedule office closed next week",
	"system upgrade completed new features available",
	"newsletter subscription confirmed welcome aboard",
}
