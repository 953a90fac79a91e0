package analyzer

// Seed lexicons and domain allowlists. Loaded once at package init into
// read-only lookup structures; never mutated at runtime.

// getWomenPositivePhrases returns phrases indicating women-positive framing
func getWomenPositivePhrases() []string {
	return []string{
		"women-led", "women led", "woman-owned", "woman owned", "female founder", "female founders",
		"women in tech", "women in science", "women in business", "women empowerment", "empowering women",
		"gender equality", "gender equity", "equal pay", "women's health", "women's rights",
		"female leadership", "women entrepreneurs", "women-focused", "by women for women",
		"supporting women", "women's network", "women's community", "mentorship for women",
		"breaking barriers", "glass ceiling", "her success", "women pioneers", "trailblazing women",
	}
}

// getGenderBiasPhrases returns phrases indicating biased or dismissive framing
func getGenderBiasPhrases() []string {
	return []string{
		"for a woman", "despite being a woman", "female driver", "bossy", "shrill", "hysterical",
		"emotional woman", "too emotional", "man up", "like a girl", "women belong",
		"women can't", "women cannot", "girls can't", "weaker sex", "fairer sex",
		"working mother juggling", "career woman", "she asked for it", "attention-seeking",
		"gold digger", "trophy wife", "man's job", "men's work", "not for girls",
	}
}

// getPoliticalLexicon returns marker phrases per point on the ordinal scale.
// Center has its own markers; a tie between left and right weight also
// resolves to center, while zero matches overall resolves to unknown.
func getPoliticalLexicon() map[string][]string {
	return map[string][]string{
		"far-left": {
			"abolish capitalism", "seize the means", "revolutionary struggle", "radical redistribution",
			"overthrow the system", "eat the rich", "anarcho",
		},
		"left": {
			"progressive", "social justice", "universal healthcare", "wealth tax", "climate justice",
			"workers' rights", "union organizing", "medicare for all", "living wage", "green new deal",
			"systemic inequality", "defund",
		},
		"center": {
			"bipartisan", "across the aisle", "moderate", "centrist", "common ground",
			"compromise bill", "pragmatic approach", "both parties",
		},
		"right": {
			"conservative", "free market", "small government", "traditional values", "tax cuts",
			"deregulation", "family values", "second amendment", "tough on crime", "fiscal responsibility",
			"border security",
		},
		"far-right": {
			"deep state", "great replacement", "globalist agenda", "rigged election", "new world order",
			"traitors to the nation", "blood and soil",
		},
	}
}

// getCallToActionPhrases returns imperative sales phrases
func getCallToActionPhrases() []string {
	return []string{
		"buy now", "shop now", "order now", "order today", "act now", "sign up now", "subscribe now",
		"click here", "call now", "get yours", "don't miss", "limited time", "limited time offer",
		"while supplies last", "hurry", "last chance", "claim your", "start your free trial",
		"book today", "add to cart", "join now", "register today",
	}
}

// getPricingPhrases returns pricing and discount markers
func getPricingPhrases() []string {
	return []string{
		"% off", "percent off", "discount", "sale", "free shipping", "best price", "lowest price",
		"save up to", "deal", "deals", "coupon", "promo code", "clearance", "bargain", "price match",
		"money back guarantee", "no obligation", "cheapest", "$",
	}
}

// getMarketingSuperlatives returns superlative marketing adjectives
func getMarketingSuperlatives() []string {
	return []string{
		"best-selling", "bestselling", "world-class", "revolutionary product", "game-changing",
		"must-have", "unbeatable", "exclusive offer", "premium quality", "award-winning",
		"number one", "#1", "top-rated", "five-star", "guaranteed results", "miracle",
	}
}

// getSensationalWords returns emotionally charged or sensational words
func getSensationalWords() []string {
	return []string{
		"shocking", "outrageous", "unbelievable", "devastating", "explosive", "bombshell",
		"terrifying", "horrifying", "jaw-dropping", "mind-blowing", "insane", "epic",
		"catastrophic", "nightmare", "scandal", "slams", "destroys", "furious", "panic",
		"chaos", "meltdown", "stunning revelation", "you won't believe", "secret they don't want",
	}
}

// getFactualMarkers returns phrases characteristic of neutral reporting
func getFactualMarkers() []string {
	return []string{
		"according to", "researchers found", "the study", "data shows", "statistics indicate",
		"reported that", "published in", "survey of", "analysis of", "evidence suggests",
		"per the report", "officials said", "in a statement",
	}
}

// getAIStockPhrases returns stock transitions common in machine-generated text
func getAIStockPhrases() []string {
	return []string{
		"in today's fast-paced world", "in the ever-evolving landscape", "it is important to note",
		"it's worth noting", "delve into", "delves into", "in conclusion", "furthermore",
		"moreover", "additionally", "comprehensive guide", "a testament to", "plays a crucial role",
		"plays a pivotal role", "in the realm of", "navigating the complexities", "unlock the potential",
		"harness the power", "seamlessly integrate", "robust solution", "leverage", "elevate your",
		"embark on a journey", "tapestry", "dive deep", "game changer", "at the end of the day",
	}
}

// getHedgingPhrases returns formal-register hedging constructs
func getHedgingPhrases() []string {
	return []string{
		"it could be argued", "some might say", "generally speaking", "in many cases",
		"it is possible that", "tend to", "may potentially", "arguably", "to some extent",
		"broadly speaking", "one could say",
	}
}

// getPersonalVoiceMarkers returns first-person and colloquial markers that
// suggest a human author
func getPersonalVoiceMarkers() []string {
	return []string{
		"i think", "i believe", "i remember", "in my experience", "my favorite", "honestly",
		"frankly", "i was", "we were", "my own", "i've", "i'm", "i'd", "my husband", "my wife",
		"my kids", "my friend", "lol", "tbh", "gonna", "kinda",
	}
}

// getSafeSpaceKeywords returns community/support-space markers
func getSafeSpaceKeywords() []string {
	return []string{
		"safe space", "support group", "peer support", "inclusive community", "judgment-free",
		"confidential helpline", "moderated community", "survivor support", "crisis support",
		"mental health support", "welcoming community", "allyship",
	}
}

// getScamKeywords returns scam/fraud markers
func getScamKeywords() []string {
	return []string{
		"guaranteed returns", "double your money", "get rich quick", "risk-free investment",
		"wire transfer only", "advance fee", "you have been selected", "claim your prize",
		"congratulations you won", "act immediately or", "verify your account", "crypto giveaway",
		"work from home earn", "no experience necessary earn", "secret method banks",
	}
}

// getDangerKeywords returns danger/harassment markers
func getDangerKeywords() []string {
	return []string{
		"harassment", "stalking", "doxxing", "threats of violence", "abusive", "predator",
		"grooming", "unsafe area", "assault reports", "date rape", "spiked drink",
		"trafficking", "catfishing", "revenge porn",
	}
}

// getSustainabilityKeywords returns green/eco/ethical-business terms
func getSustainabilityKeywords() []string {
	return []string{
		"sustainable", "sustainability", "eco-friendly", "carbon neutral", "carbon footprint",
		"net zero", "renewable energy", "recycled", "recyclable", "compostable", "zero waste",
		"fair trade", "ethically sourced", "organic", "biodegradable", "circular economy",
		"b corp", "climate positive", "green energy", "solar powered", "plastic-free",
		"regenerative", "upcycled", "cruelty-free",
	}
}

// getSustainabilityDomains returns domains of sustainability-focused organizations
func getSustainabilityDomains() map[string]bool {
	domains := []string{
		"bcorporation.net", "fairtrade.net", "greenpeace.org", "wwf.org", "epa.gov",
		"unep.org", "sustainablebrands.com", "treehugger.com", "ecowatch.com",
		"goodonyou.eco", "ethicalconsumer.org", "1percentfortheplanet.org",
	}

	set := make(map[string]bool)
	for _, d := range domains {
		set[d] = true
	}
	return set
}

// getVerifiedNewsDomains returns a maintained list of verified news outlets
func getVerifiedNewsDomains() map[string]bool {
	domains := []string{
		"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk", "npr.org", "theguardian.com",
		"nytimes.com", "washingtonpost.com", "wsj.com", "economist.com", "ft.com",
		"aljazeera.com", "dw.com", "france24.com", "cbc.ca", "abc.net.au", "pbs.org",
		"bloomberg.com", "axios.com", "propublica.org",
	}

	set := make(map[string]bool)
	for _, d := range domains {
		set[d] = true
	}
	return set
}

// getWomenFocusedDomains returns the curated women-focused domain allowlist.
// Used for the credibility bonus and the women-led safety flag.
func getWomenFocusedDomains() map[string]bool {
	domains := []string{
		"womenshealth.gov", "unwomen.org", "womensmediacenter.com", "catalyst.org",
		"leanin.org", "girlswhocode.com", "womenwhocode.com", "anitab.org",
		"womensaid.org.uk", "now.org", "aauw.org", "hermoney.com", "theskimm.com",
		"womensagenda.com.au", "femsplain.com", "motherly.com", "hersolidarity.org",
		"womendeliver.org", "globalfundforwomen.org", "plannedparenthood.org",
	}

	set := make(map[string]bool)
	for _, d := range domains {
		set[d] = true
	}
	return set
}
