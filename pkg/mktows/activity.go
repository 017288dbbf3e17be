package mktows

// Activity categories accepted by GetLeadActivity.
const (
	CategoryWebsiteActivity    = "Website Activity"
	CategoryEmailActivity      = "Email Activity"
	CategoryScore              = "Score"
	CategoryInterestingMoments = "Interesting Moments"
)

// activityTokens maps each activity category to the remote activity-type
// tokens it selects.
var activityTokens = map[string][]string{
	CategoryWebsiteActivity: {
		"VisitWebpage",
		"ClickLink",
		"FillOutForm",
	},
	CategoryEmailActivity: {
		"SendEmail",
		"EmailBounced",
		"UnsubscribeEmail",
		"OpenEmail",
		"ClickEmail",
		"OpenSalesEmail",
		"ClickSalesEmail",
	},
	CategoryScore:              {"ChangeScore"},
	CategoryInterestingMoments: {"InterestingMoment"},
}

// ActivityTokens returns the activity-type tokens for a category and
// whether the category is known. The returned slice is a copy.
func ActivityTokens(category string) ([]string, bool) {
	tokens, ok := activityTokens[category]
	if !ok {
		return nil, false
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out, true
}

// activityKeyType returns the lead key type a category queries by.
// Email activity is keyed by email address; everything else by cookie.
func activityKeyType(category string) LeadKeyType {
	if category == CategoryEmailActivity {
		return LeadKeyEmail
	}
	return LeadKeyCookie
}
