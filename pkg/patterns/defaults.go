// pkg/patterns/defaults.go
package patterns

// Defaults returns the compiled-in matching tables. Callers get a fresh
// copy each time; mutating the result never affects other callers.
func Defaults() *Set {
	return &Set{
		Version: "1.0",

		Intents: []IntentPattern{
			{
				Name:         "greeting",
				ExactPhrases: []string{"hi", "hello", "hey", "hi there", "hello there", "good morning", "good afternoon", "good evening", "hey there"},
				Primary:      []string{"hello", "hi", "hey", "howdy"},
				Secondary:    []string{"morning", "afternoon", "evening", "greetings"},
			},
			{
				Name:         "business_info",
				ExactPhrases: []string{"i own a restaurant", "i own a cafe", "i own a salon", "i run a gym", "i have a small business"},
				Primary:      []string{"own", "run", "operate", "business", "my shop", "my store"},
				Secondary:    []string{"restaurant", "cafe", "salon", "gym", "bar", "store", "company", "shop"},
				Negative:     []string{"website", "price", "cost"},
			},
			{
				Name:         "website_need",
				ExactPhrases: []string{"i need a website", "i want a website", "we need a new website", "i need a site for my business"},
				Primary:      []string{"website", "site", "webpage", "web"},
				Secondary:    []string{"need", "want", "looking", "build", "create", "new", "online presence"},
				Negative:     []string{"already have", "don't need"},
			},
			{
				Name:         "feature_inquiry",
				ExactPhrases: []string{"what features do you offer", "can you add online ordering", "do you do online booking", "can the website take payments"},
				Primary:      []string{"feature", "ordering", "booking", "payments", "seo", "ecommerce", "chatbot"},
				Secondary:    []string{"include", "offer", "support", "add", "integrate", "capability", "can it"},
			},
			{
				Name:         "pricing_inquiry",
				ExactPhrases: []string{"how much does it cost", "how much is it", "what are your prices", "what does a website cost", "pricing", "how much"},
				Primary:      []string{"price", "cost", "pricing", "much", "rates", "fee"},
				Secondary:    []string{"how", "what", "charge", "expensive", "pay"},
				Negative:     []string{"too expensive", "can't afford"},
			},
			{
				Name:         "quote_request",
				ExactPhrases: []string{"can i get a quote", "send me a quote", "i'd like a quote", "give me an estimate"},
				Primary:      []string{"quote", "estimate", "proposal"},
				Secondary:    []string{"send", "get", "detailed", "breakdown", "formal"},
			},
			{
				Name:         "budget_info",
				ExactPhrases: []string{"my budget is flexible", "i have a budget in mind"},
				Primary:      []string{"budget", "spend", "afford", "invest"},
				Secondary:    []string{"around", "about", "roughly", "up to", "maximum", "willing"},
				Negative:     []string{"tight", "small budget", "can't afford"},
			},
			{
				Name:         "budget_concern",
				ExactPhrases: []string{"that's too expensive", "that is too expensive", "that's out of my budget", "i can't afford that"},
				Primary:      []string{"expensive", "afford", "cheaper", "discount"},
				Secondary:    []string{"too", "much", "lower", "reduce", "deal", "lot of money"},
			},
			{
				Name:         "budget_tight",
				ExactPhrases: []string{"i have a tight budget", "my budget is tight", "i'm on a tight budget", "money is tight"},
				Primary:      []string{"tight", "limited", "small budget"},
				Secondary:    []string{"budget", "cheap", "affordable", "minimal", "startup"},
			},
			{
				Name:         "timeline_info",
				ExactPhrases: []string{"i need it asap", "how long does it take", "when can you start", "how fast can you build it"},
				Primary:      []string{"asap", "urgent", "deadline", "timeline", "when", "how long"},
				Secondary:    []string{"soon", "quickly", "fast", "weeks", "month", "launch", "ready"},
			},
			{
				Name:         "decision_authority",
				ExactPhrases: []string{"i'm the owner", "i am the owner", "i make the decisions", "i need to ask my partner"},
				Primary:      []string{"owner", "decision", "partner", "boss"},
				Secondary:    []string{"approve", "check with", "ask", "manager", "my call"},
			},
			{
				Name:         "essential_details",
				ExactPhrases: []string{"tell me about the essential package", "what's in the essential plan", "essential package details"},
				Primary:      []string{"essential", "basic", "starter"},
				Secondary:    []string{"package", "plan", "tier", "included", "details"},
			},
			{
				Name:         "professional_details",
				ExactPhrases: []string{"tell me about the professional package", "what's in the professional plan", "professional package details"},
				Primary:      []string{"professional", "standard", "mid"},
				Secondary:    []string{"package", "plan", "tier", "included", "details"},
			},
			{
				Name:         "premium_details",
				ExactPhrases: []string{"tell me about the premium package", "what's in the premium plan", "premium package details"},
				Primary:      []string{"premium", "top", "advanced", "best package"},
				Secondary:    []string{"package", "plan", "tier", "included", "details"},
			},
			{
				Name:         "comparison_request",
				ExactPhrases: []string{"what's the difference between the packages", "compare the packages", "which package is right for me"},
				Primary:      []string{"difference", "compare", "versus", "vs", "which package"},
				Secondary:    []string{"better", "between", "right for", "recommend", "options"},
			},
			{
				Name:         "ready_to_start",
				ExactPhrases: []string{"let's do it", "i'm ready to start", "sign me up", "let's get started", "i want to move forward", "where do i sign"},
				Primary:      []string{"ready", "start", "sign", "go ahead", "move forward"},
				Secondary:    []string{"let's", "begin", "today", "now", "deal", "in"},
				Negative:     []string{"not ready", "not sure"},
			},
			{
				Name:         "not_interested",
				ExactPhrases: []string{"not interested", "no thanks", "i'm not interested", "stop messaging me", "leave me alone"},
				Primary:      []string{"not interested", "no thanks", "stop", "unsubscribe"},
				Secondary:    []string{"maybe later", "never", "go away"},
			},
			{
				Name:         "goodbye",
				ExactPhrases: []string{"bye", "goodbye", "see you", "talk later", "gotta go", "see ya"},
				Primary:      []string{"bye", "goodbye", "later", "farewell"},
				Secondary:    []string{"see", "talk", "leaving", "go now"},
			},
			{
				Name:         "support_inquiry",
				ExactPhrases: []string{"i need help with my order", "i have a problem with my website", "my site is down", "i need support"},
				Primary:      []string{"help", "support", "problem", "issue", "broken"},
				Secondary:    []string{"order", "existing", "down", "fix", "not working", "bug"},
				Negative:     []string{"need a website", "new website"},
			},
			{
				Name:         "thanks",
				ExactPhrases: []string{"thanks", "thank you", "thanks a lot", "thank you so much", "appreciate it"},
				Primary:      []string{"thanks", "thank"},
				Secondary:    []string{"appreciate", "helpful", "great"},
			},
		},

		// Checked in order; cafe before restaurant is load-bearing.
		BusinessTypes: []KeywordSet{
			{Tag: "cafe", Keywords: []string{"cafe", "coffee shop", "coffeehouse", "espresso", "bakery", "patisserie"}},
			{Tag: "salon", Keywords: []string{"salon", "spa", "barber", "barbershop", "hair", "nails", "beauty", "lashes", "waxing"}},
			{Tag: "fitness", Keywords: []string{"gym", "fitness", "yoga", "pilates", "crossfit", "personal training", "studio"}},
			{Tag: "bar", Keywords: []string{"bar", "pub", "brewery", "taproom", "cocktail", "nightclub", "lounge"}},
			{Tag: "restaurant", Keywords: []string{"restaurant", "diner", "bistro", "eatery", "pizzeria", "food truck", "grill", "taqueria", "sushi", "kitchen"}},
		},

		BusinessNouns: []string{
			"restaurant", "cafe", "coffee shop", "bakery", "salon", "spa", "barbershop",
			"gym", "studio", "bar", "pub", "brewery", "shop", "store", "boutique",
			"business", "company", "diner", "bistro", "pizzeria", "food truck",
		},

		BudgetTight:    []string{"tight budget", "small budget", "limited budget", "not much money", "cheap", "low cost", "as little as possible", "shoestring"},
		BudgetFlexible: []string{"flexible budget", "budget is flexible", "money is no object", "whatever it takes", "open budget", "price isn't an issue", "cost is not a concern"},

		// Checked in order; first match wins.
		Timelines: []KeywordSet{
			{Tag: "urgent", Keywords: []string{"asap", "urgent", "immediately", "right away", "this week", "yesterday", "as soon as possible", "emergency"}},
			{Tag: "soon", Keywords: []string{"soon", "this month", "next month", "few weeks", "couple weeks", "couple of weeks", "quickly"}},
			{Tag: "flexible", Keywords: []string{"no rush", "whenever", "flexible", "no hurry", "take your time", "few months"}},
			{Tag: "exploring", Keywords: []string{"just looking", "exploring", "researching", "curious", "someday", "browsing", "shopping around"}},
		},

		Features: []KeywordSet{
			{Tag: "ai", Keywords: []string{"ai", "chatbot", "chat bot", "artificial intelligence", "automated assistant", "virtual assistant"}},
			{Tag: "ordering", Keywords: []string{"online ordering", "order online", "ordering", "takeout", "take out", "delivery", "pickup orders"}},
			{Tag: "booking", Keywords: []string{"booking", "appointments", "appointment", "reservations", "reservation", "scheduling", "book online"}},
			{Tag: "ecommerce", Keywords: []string{"ecommerce", "e-commerce", "online store", "sell online", "sell products", "shopping cart"}},
			{Tag: "seo", Keywords: []string{"seo", "google ranking", "search engine", "found on google", "rank higher", "search results"}},
			{Tag: "custom_design", Keywords: []string{"custom design", "unique design", "branding", "logo", "look and feel", "modern design"}},
			{Tag: "payments", Keywords: []string{"payments", "payment processing", "take payments", "accept cards", "credit card", "stripe"}},
			{Tag: "email_marketing", Keywords: []string{"email marketing", "newsletter", "email list", "mailing list", "email campaigns"}},
		},

		PainPoints: []KeywordSet{
			{Tag: "no_website", Keywords: []string{"no website", "don't have a website", "dont have a website", "without a website", "never had a website"}},
			{Tag: "outdated", Keywords: []string{"outdated", "old website", "ancient", "from 2010", "looks old", "stale"}},
			{Tag: "no_ordering", Keywords: []string{"can't order online", "cant order online", "no online ordering", "phone orders only", "call to order"}},
			{Tag: "no_booking", Keywords: []string{"can't book online", "cant book online", "no online booking", "phone bookings", "call to book"}},
			{Tag: "losing_customers", Keywords: []string{"losing customers", "losing business", "customers leave", "going to competitors", "missing out"}},
			{Tag: "not_on_google", Keywords: []string{"not on google", "can't find us", "cant find us", "don't show up", "invisible online", "no one finds us"}},
			{Tag: "unprofessional", Keywords: []string{"unprofessional", "looks bad", "embarrassing", "amateur", "cheap looking"}},
			{Tag: "no_mobile", Keywords: []string{"not mobile friendly", "doesn't work on phones", "doesnt work on phones", "broken on mobile", "mobile site"}},
			{Tag: "cant_update", Keywords: []string{"can't update", "cant update", "can't change", "cant change", "need a developer", "stuck with", "can't edit"}},
		},

		// Checked in order; first match wins.
		DecisionRoles: []KeywordSet{
			{Tag: "owner", Keywords: []string{"i'm the owner", "i am the owner", "my business", "i own", "my decision", "i decide", "it's my call", "its my call", "sole owner"}},
			{Tag: "needs_approval", Keywords: []string{"ask my boss", "check with my partner", "need approval", "talk to my", "not my decision", "run it by", "convince my"}},
			{Tag: "influencer", Keywords: []string{"i manage", "i'm the manager", "i am the manager", "recommend to", "i help run", "on behalf of"}},
		},

		SentimentPositive: []string{"great", "awesome", "perfect", "love", "excellent", "amazing", "yes", "definitely", "sounds good", "wonderful", "fantastic", "excited", "interested"},
		SentimentNegative: []string{"no", "bad", "terrible", "hate", "awful", "expensive", "worried", "problem", "frustrated", "annoying", "waste", "scam", "doubt"},

		StatePriorities: map[string][]string{
			"welcome":             {"greeting", "business_info", "website_need"},
			"discovery":           {"business_info", "website_need"},
			"business_profiling":  {"business_info", "feature_inquiry"},
			"needs_assessment":    {"feature_inquiry", "website_need"},
			"budget_discussion":   {"budget_info", "budget_concern", "budget_tight", "pricing_inquiry"},
			"timeline_assessment": {"timeline_info"},
			"recommendation":      {"essential_details", "professional_details", "premium_details", "comparison_request", "ready_to_start"},
			"package_details":     {"ready_to_start", "quote_request", "comparison_request"},
			"objection_handling":  {"budget_info", "ready_to_start", "not_interested"},
			"closing":             {"ready_to_start", "quote_request"},
			"support":             {"support_inquiry"},
		},
	}
}
