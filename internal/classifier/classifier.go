// Package classifier guesses what a bill is from a file name or an email subject.
package classifier

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// Guess is the result of classifying a name.
type Guess struct {
	Title    string `json:"title" example:"Electricity Bill"`
	Category string `json:"category" example:"Utilities"`
}

// Unknown is returned when no rule matches.
var Unknown = Guess{Title: "Unknown Bill", Category: "Others"}

type rule struct {
	patterns []string
	guess    Guess
}

func newRule(title, category string, keywords ...string) rule {
	patterns := make([]string, 0, len(keywords))
	for _, k := range keywords {
		patterns = append(patterns, glob.GLOB+k+glob.GLOB)
	}

	return rule{patterns: patterns, guess: Guess{Title: title, Category: category}}
}

// rules are tested in order, the first match wins.
var rules = []rule{
	newRule("Electricity Bill", "Utilities", "electric", "power"),
	newRule("Water Bill", "Utilities", "water"),
	newRule("Phone Bill", "Utilities", "phone", "mobile"),
	newRule("Internet Bill", "Utilities", "internet", "wifi"),
	newRule("House Rent", "Housing", "rent", "house"),
	newRule("DTH Subscription", "Entertainment", "tv", "dth"),
	newRule("Insurance Premium", "Insurance", "insurance"),
	newRule("Credit Card Bill", "Finance", "credit", "card"),
}

// Classify returns the guess for a file name or email subject.
//
// Matching is case insensitive substring containment. Every input yields
// a guess, Unknown if nothing matches.
func Classify(name string) Guess {
	lower := strings.ToLower(name)

	for _, r := range rules {
		for _, p := range r.patterns {
			if glob.Glob(p, lower) {
				return r.guess
			}
		}
	}

	return Unknown
}

// Categories returns all categories the classifier can produce, in rule order.
func Categories() []string {
	categories := []string{}
	for _, r := range rules {
		if !slices.Contains(categories, r.guess.Category) {
			categories = append(categories, r.guess.Category)
		}
	}

	return append(categories, Unknown.Category)
}
