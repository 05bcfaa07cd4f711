package pos

// OtherDescription is the description of tags missing in the tagset table.
const OtherDescription = "Other"

var descriptions = map[string]string{
	"NN":   "Noun, singular",
	"NNS":  "Noun, plural",
	"NNP":  "Proper noun, singular",
	"NNPS": "Proper noun, plural",
	"VB":   "Verb, base form",
	"VBD":  "Verb, past tense",
	"VBG":  "Verb, gerund/present participle",
	"VBN":  "Verb, past participle",
	"VBP":  "Verb, non-3rd person singular present",
	"VBZ":  "Verb, 3rd person singular present",
	"JJ":   "Adjective",
	"JJR":  "Adjective, comparative",
	"JJS":  "Adjective, superlative",
	"RB":   "Adverb",
	"RBR":  "Adverb, comparative",
	"RBS":  "Adverb, superlative",
	"PRP":  "Personal pronoun",
	"PRP$": "Possessive pronoun",
	"DT":   "Determiner",
	"IN":   "Preposition/subordinating conjunction",
	"CC":   "Coordinating conjunction",
	"CD":   "Cardinal number",
	"TO":   "to",
	"MD":   "Modal",
}

// Describe returns a human-readable name of the tag.
func Describe(tag string) string {
	if d, ok := descriptions[tag]; ok {
		return d
	}
	return OtherDescription
}
