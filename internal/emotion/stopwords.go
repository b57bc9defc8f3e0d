package emotion

// stopWords is the closed set of grammatical words that always classify as
// neutral on an exact whole-text match. General-purpose taggers score these
// as mildly negative when they appear in isolation; this list corrects that,
// it is not a linguistic feature.
var stopWords = map[string]struct{}{
	// English: articles, pronouns, auxiliaries, prepositions
	"the": {}, "a": {}, "an": {},
	"i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "do": {}, "does": {}, "did": {},
	"have": {}, "has": {}, "had": {}, "will": {}, "would": {},
	"can": {}, "could": {}, "shall": {}, "should": {}, "may": {}, "might": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "of": {}, "for": {},
	"with": {}, "by": {}, "from": {}, "about": {}, "and": {}, "or": {}, "but": {},

	// Russian: pronouns, conjunctions, prepositions, particles
	"я": {}, "ты": {}, "он": {}, "она": {}, "оно": {}, "мы": {}, "вы": {}, "они": {},
	"и": {}, "или": {}, "но": {}, "а": {}, "же": {}, "ли": {}, "бы": {},
	"в": {}, "на": {}, "с": {}, "к": {}, "по": {}, "за": {}, "от": {}, "до": {},
	"у": {}, "о": {}, "об": {}, "из": {}, "под": {}, "над": {}, "для": {},
	"это": {}, "эта": {}, "этот": {}, "тот": {}, "та": {}, "то": {},
}

// negatedIdioms are negated-adjective phrases that naive scorers read as
// negative because the embedded adjective dominates. A substring match on
// any of them overrides scoring with a fixed positive result.
var negatedIdioms = []string{
	"not bad",
	"not terrible",
	"not awful",
	"not horrible",
	"not the worst",
	"nothing wrong",
	"не плохо",
	"неплохо",
	"не ужасно",
	"не страшно",
	"ничего плохого",
}
