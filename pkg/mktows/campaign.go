package mktows

import (
	"context"
)

// DefaultCampaignSource is the campaign source used when a request does
// not name one.
const DefaultCampaignSource = "MKTOWS"

// CampaignRequest describes a requestCampaign dispatch. Either
// CampaignID or CampaignName identifies the campaign; ProgramName is
// required only when program tokens are supplied.
type CampaignRequest struct {
	// Source of the request. Defaults to DefaultCampaignSource.
	Source string

	// CampaignID is the campaign's system ID.
	CampaignID int

	// CampaignName identifies the campaign when the ID is not used.
	CampaignName string

	// ProgramName qualifies the program tokens.
	ProgramName string

	// Leads are the keys of the leads to run through the campaign.
	Leads []LeadKey

	// ProgramTokens are my-token name/value pairs for the campaign.
	ProgramTokens []NameValue
}

// RequestCampaign schedules leads through a campaign. Lead key order and
// program token order are preserved.
func (c *Client) RequestCampaign(ctx context.Context, request CampaignRequest) (*SuccessRequestCampaign, error) {
	source := request.Source
	if source == "" {
		source = DefaultCampaignSource
	}

	params := &ParamsRequestCampaign{
		Source:       source,
		CampaignID:   request.CampaignID,
		CampaignName: request.CampaignName,
		ProgramName:  request.ProgramName,
	}

	if len(request.Leads) > 0 {
		leads := make([]LeadKey, len(request.Leads))
		copy(leads, request.Leads)
		params.LeadList = &ArrayOfLeadKey{LeadKeys: leads}
	}

	if len(request.ProgramTokens) > 0 {
		params.ProgramTokenList = &ArrayOfAttribute{
			Attributes: pairsToAttributes(request.ProgramTokens),
		}
	}

	var response SuccessRequestCampaign
	if err := c.Call(ctx, "requestCampaign", params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
