package mktows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityTokens(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{
			category: CategoryWebsiteActivity,
			want:     []string{"VisitWebpage", "ClickLink", "FillOutForm"},
		},
		{
			category: CategoryEmailActivity,
			want: []string{
				"SendEmail", "EmailBounced", "UnsubscribeEmail", "OpenEmail",
				"ClickEmail", "OpenSalesEmail", "ClickSalesEmail",
			},
		},
		{
			category: CategoryScore,
			want:     []string{"ChangeScore"},
		},
		{
			category: CategoryInterestingMoments,
			want:     []string{"InterestingMoment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			tokens, ok := ActivityTokens(tt.category)
			require.True(t, ok)
			assert.Equal(t, tt.want, tokens)
		})
	}
}

func TestActivityTokens_UnknownCategory(t *testing.T) {
	tokens, ok := ActivityTokens("Personal Information")
	assert.False(t, ok)
	assert.Nil(t, tokens)
}

func TestActivityTokens_ReturnsCopy(t *testing.T) {
	tokens, ok := ActivityTokens(CategoryScore)
	require.True(t, ok)
	tokens[0] = "mutated"

	again, _ := ActivityTokens(CategoryScore)
	assert.Equal(t, []string{"ChangeScore"}, again)
}

func TestActivityKeyType(t *testing.T) {
	assert.Equal(t, LeadKeyEmail, activityKeyType(CategoryEmailActivity))
	assert.Equal(t, LeadKeyCookie, activityKeyType(CategoryWebsiteActivity))
	assert.Equal(t, LeadKeyCookie, activityKeyType(CategoryScore))
	assert.Equal(t, LeadKeyCookie, activityKeyType(CategoryInterestingMoments))
}
