package stoplist

var builtin = map[Category][]string{
	General: {
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
		"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
		"who", "whom", "this", "that", "these", "those", "am", "is", "are", "was", "were", "be",
		"been", "being", "have", "has", "had", "having", "do", "does", "did", "doing", "a", "an",
		"the", "and", "but", "if", "or", "because", "as", "until", "while", "of", "at", "by",
		"for", "with", "about", "against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "in", "out", "on", "off", "over",
		"under", "again", "further", "then", "once", "here", "there", "when", "where", "why",
		"how", "all", "any", "both", "each", "few", "more", "most", "other", "some", "such", "no",
		"nor", "not", "only", "own", "same", "so", "than", "too", "very", "can", "will", "just",
		"don", "should", "now", "could", "would", "might", "must", "shall", "may", "also",
		"although", "though", "however", "therefore", "thus", "hence", "yet", "still", "even",
		"ever", "every", "either", "neither", "whether", "within", "without", "upon", "onto",
		"among", "amongst", "across", "along", "around", "behind", "beside", "besides", "beyond",
		"toward", "towards", "unless", "whereas", "wherever", "whenever", "whoever", "whatever",
		"something", "anything", "everything", "nothing", "someone", "anyone", "everyone",
		"nobody", "somebody", "anybody", "everybody", "really", "quite", "rather", "perhaps",
		"maybe", "actually", "basically", "simply", "indeed", "else", "instead", "otherwise",
	},
	Temporal: {
		"today", "tomorrow", "yesterday", "tonight", "morning", "afternoon", "evening", "night",
		"week", "weeks", "weekend", "month", "months", "year", "years", "decade", "decades",
		"century", "centuries", "hour", "hours", "minute", "minutes", "second", "seconds", "day",
		"days", "daily", "weekly", "monthly", "yearly", "annual", "annually", "always", "never",
		"often", "sometimes", "usually", "rarely", "seldom", "soon", "later", "earlier", "early",
		"late", "lately", "recently", "recent", "currently", "current", "already", "previously",
		"previous", "formerly", "former", "eventually", "finally", "initially", "meanwhile",
		"afterwards", "nowadays", "moment", "moments", "time", "times", "period", "periods",
		"january", "february", "march", "april", "june", "july", "august", "september",
		"october", "november", "december", "monday", "tuesday", "wednesday", "thursday",
		"friday", "saturday", "sunday",
	},
	Quantity: {
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"eleven", "twelve", "twenty", "thirty", "forty", "fifty", "hundred", "hundreds",
		"thousand", "thousands", "million", "millions", "billion", "billions", "first", "third",
		"fourth", "fifth", "half", "quarter", "double", "triple", "single", "many", "much",
		"several", "numerous", "various", "multiple", "lots", "plenty", "less", "least", "fewer",
		"amount", "amounts", "number", "numbers", "total", "percent", "percentage", "majority",
		"minority", "couple", "dozen", "dozens", "enough", "entire", "whole", "once", "twice",
	},
	Directional: {
		"left", "right", "north", "south", "east", "west", "northern", "southern", "eastern",
		"western", "upward", "upwards", "downward", "downwards", "forward", "forwards",
		"backward", "backwards", "inside", "outside", "inward", "outward", "nearby", "near",
		"far", "away", "ahead", "beneath", "underneath", "front", "back", "side", "sides",
		"top", "bottom", "middle", "center", "centre", "everywhere", "somewhere", "anywhere",
		"nowhere", "elsewhere", "hither", "thither",
	},
	GenericVerb: {
		"make", "makes", "made", "making", "take", "takes", "took", "taken", "taking", "give",
		"gives", "gave", "given", "giving", "get", "gets", "got", "gotten", "getting", "go",
		"goes", "went", "gone", "going", "come", "comes", "came", "coming", "use", "uses",
		"used", "using", "want", "wants", "wanted", "need", "needs", "needed", "seem", "seems",
		"seemed", "look", "looks", "looked", "looking", "know", "knows", "knew", "known",
		"think", "thinks", "thought", "thinking", "tell", "tells", "told", "say", "says", "said",
		"saying", "see", "sees", "saw", "seen", "keep", "keeps", "kept", "let", "lets", "put",
		"puts", "find", "finds", "found", "become", "becomes", "became", "include", "includes",
		"included", "including", "provide", "provides", "provided", "allow", "allows",
		"allowed", "help", "helps", "helped", "show", "shows", "showed", "shown", "try",
		"tries", "tried", "work", "works", "worked", "thing", "things", "stuff", "way", "ways",
	},
	GenericAdjective: {
		"good", "better", "best", "bad", "worse", "worst", "great", "big", "bigger", "biggest",
		"small", "smaller", "smallest", "large", "larger", "largest", "little", "long", "longer",
		"short", "high", "higher", "low", "lower", "new", "newer", "newest", "old", "older",
		"oldest", "nice", "fine", "okay", "real", "true", "false", "able", "different",
		"similar", "certain", "important", "possible", "likely", "general", "specific",
		"particular", "common", "main", "major", "minor", "simple", "easy", "hard", "full",
		"free", "sure", "clear", "whole", "next", "last", "final", "usual", "normal", "overall",
		"available", "relevant", "various", "additional", "significant", "especially",
		"generally", "usually", "probably", "certainly", "clearly", "obviously", "truly",
		"fully", "highly", "largely", "mostly", "mainly", "nearly", "almost", "well",
	},
}
