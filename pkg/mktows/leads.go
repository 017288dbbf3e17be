package mktows

import (
	"context"
	"errors"
	"fmt"
)

// Lead operation errors
var (
	// ErrUnknownKeyType is returned when a lead key type name is not one
	// of Email, Cookie, or IDNUM.
	ErrUnknownKeyType = errors.New("unknown lead key type")

	// ErrMissingWinningLead is returned when a merge names no winning lead.
	ErrMissingWinningLead = errors.New("winning lead ID is required")

	// ErrMissingLosingLeads is returned when a merge names no losing leads.
	ErrMissingLosingLeads = errors.New("at least one losing lead ID is required")
)

// parseLeadKeyType maps the caller-facing key type names onto the
// service's enumeration.
func parseLeadKeyType(keyType string) (LeadKeyType, error) {
	switch keyType {
	case "Email":
		return LeadKeyEmail, nil
	case "Cookie":
		return LeadKeyCookie, nil
	case "IDNUM":
		return LeadKeyIDNum, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKeyType, keyType)
}

// GetLead retrieves a lead by key. keyType is one of "Email", "Cookie",
// or "IDNUM". The service faults with code 20103 when no lead matches.
func (c *Client) GetLead(ctx context.Context, keyValue, keyType string) (*SuccessGetLead, error) {
	kt, err := parseLeadKeyType(keyType)
	if err != nil {
		return nil, err
	}

	request := &ParamsGetLead{
		LeadKey: LeadKey{KeyType: kt, KeyValue: keyValue},
	}

	var response SuccessGetLead
	if err := c.Call(ctx, "getLead", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetLeadByIDNum retrieves a lead by its numeric system ID.
func (c *Client) GetLeadByIDNum(ctx context.Context, idNum string) (*SuccessGetLead, error) {
	return c.GetLead(ctx, idNum, "IDNUM")
}

// GetLeadByCookie retrieves a lead by its tracking cookie.
func (c *Client) GetLeadByCookie(ctx context.Context, cookie string) (*SuccessGetLead, error) {
	return c.GetLead(ctx, cookie, "Cookie")
}

// SyncLead creates or updates a single lead keyed by email address.
// attributes is an ordered list of (name, type, value) triples. When
// returnLead is true the complete lead record is returned.
func (c *Client) SyncLead(ctx context.Context, email string, attributes []Attribute, returnLead bool) (*SuccessSyncLead, error) {
	request := &ParamsSyncLead{
		LeadRecord: BuildLeadRecord(email, attributes),
		ReturnLead: returnLead,
	}

	var response SuccessSyncLead
	if err := c.Call(ctx, "syncLead", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SyncMultipleLeads creates or updates a batch of leads. When
// dedupEnabled is true the service de-duplicates records on email address.
func (c *Client) SyncMultipleLeads(ctx context.Context, leads []LeadInput, dedupEnabled bool) (*SuccessSyncMultipleLeads, error) {
	records := make([]LeadRecord, len(leads))
	for i, lead := range leads {
		records[i] = BuildLeadRecord(lead.Email, lead.Attributes)
	}

	request := &ParamsSyncMultipleLeads{
		LeadRecordList: ArrayOfLeadRecord{LeadRecords: records},
		DedupEnabled:   dedupEnabled,
	}

	var response SuccessSyncMultipleLeads
	if err := c.Call(ctx, "syncMultipleLeads", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// MergeLeads merges one or more losing leads into a winning lead, all
// identified by numeric system ID. Construction problems (no winning
// lead, no losing leads) are reported as errors before any network
// activity rather than being silently discarded.
func (c *Client) MergeLeads(ctx context.Context, winningID string, losingIDs []string) (*SuccessMergeLeads, error) {
	if winningID == "" {
		return nil, ErrMissingWinningLead
	}
	if len(losingIDs) == 0 {
		return nil, ErrMissingLosingLeads
	}

	losing := make([]ArrayOfAttribute, len(losingIDs))
	for i, id := range losingIDs {
		losing[i] = ArrayOfAttribute{
			Attributes: []Attribute{{Name: "IDNUM", Value: id}},
		}
	}

	request := &ParamsMergeLeads{
		WinningLeadKeyList: ArrayOfAttribute{
			Attributes: []Attribute{{Name: "IDNUM", Value: winningID}},
		},
		LosingLeadKeyLists: ArrayOfKeyList{KeyLists: losing},
	}

	var response SuccessMergeLeads
	if err := c.Call(ctx, "mergeLeads", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// LeadActivityResult is the outcome of GetLeadActivity. When the
// requested category has no activity-token mapping the result is marked
// Skipped and the remote service is never called.
type LeadActivityResult struct {
	Skipped bool
	Success *SuccessGetLeadActivity
}

// GetLeadActivity retrieves a lead's activity history filtered to the
// activity types of a category (see ActivityTokens). Email Activity is
// looked up by email address; all other categories by cookie.
func (c *Client) GetLeadActivity(ctx context.Context, cookie, category string) (*LeadActivityResult, error) {
	tokens, ok := ActivityTokens(category)
	if !ok {
		return &LeadActivityResult{Skipped: true}, nil
	}

	request := &ParamsGetLeadActivity{
		LeadKey: LeadKey{KeyType: activityKeyType(category), KeyValue: cookie},
		ActivityFilter: &ActivityTypeFilter{
			IncludeTypes: &ArrayOfActivityType{ActivityTypes: tokens},
		},
	}

	var response SuccessGetLeadActivity
	if err := c.Call(ctx, "getLeadActivity", request, &response); err != nil {
		return nil, err
	}
	return &LeadActivityResult{Success: &response}, nil
}
