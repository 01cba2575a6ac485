// Package chat answers support questions with canned replies.
package chat

import "strings"

// Intent is what a chat message is about.
type Intent string

const (
	IntentAddBill       Intent = "add_bill"
	IntentReminder      Intent = "reminder"
	IntentDataSafe      Intent = "data_safe"
	IntentExport        Intent = "export"
	IntentDelete        Intent = "delete"
	IntentLanguage      Intent = "language"
	IntentGreeting      Intent = "greeting"
	IntentThanks        Intent = "thanks"
	IntentNotUnderstood Intent = "not_understood"
)

type rule struct {
	keywords []string
	intent   Intent
}

// rules are tested in order, the first match wins. Keywords match anywhere
// in the message, so "hi" also matches "this".
var rules = []rule{
	{[]string{"add bill", "upload", "new bill"}, IntentAddBill},
	{[]string{"reminder", "notify"}, IntentReminder},
	{[]string{"safe", "secure", "privacy"}, IntentDataSafe},
	{[]string{"export", "download", "csv"}, IntentExport},
	{[]string{"delete", "remove"}, IntentDelete},
	{[]string{"language", "translate"}, IntentLanguage},
	{[]string{"hello", "hi", "hey"}, IntentGreeting},
	{[]string{"thank"}, IntentThanks},
}

// Match returns the intent of a message.
func Match(message string) Intent {
	lower := strings.ToLower(message)

	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.intent
			}
		}
	}

	return IntentNotUnderstood
}

var replies = map[Intent]string{
	IntentAddBill:       "To add a bill, open Upload Bills and drop a photo or PDF of it, or import bills from your email. You can also enter a bill manually.",
	IntentReminder:      "Open Reminders to create a reminder for any bill. Smart reminders are scheduled 7, 3 and 1 days before the due date.",
	IntentDataSafe:      "Your data stays with you. Billtrail does not share your bills with anyone.",
	IntentExport:        "Go to History and use Export CSV to download your bill history, or export all your data from your profile.",
	IntentDelete:        "You can delete all your data from the Data tab of your profile. This cannot be undone.",
	IntentLanguage:      "You can switch between English, Hindi, Telugu, Tamil, Kannada and Malayalam in your profile.",
	IntentGreeting:      "Hello! How can I help you with your bills today?",
	IntentThanks:        "You're welcome! Let me know if there is anything else I can help with.",
	IntentNotUnderstood: "Sorry, I did not understand that. Try asking about adding bills, reminders, exporting or your data.",
}

// Reply returns the reply text for an intent.
func Reply(intent Intent) string {
	if r, ok := replies[intent]; ok {
		return r
	}

	return replies[IntentNotUnderstood]
}
