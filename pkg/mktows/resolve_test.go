package mktows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-mktows/pkg/wsdl"
)

// testDescription declares the full operation surface plus a few
// structured types, including one ("GetLead") that collides with a
// static member and one ("Widget") with no dedicated Go struct.
func testDescription(endpoint string) *wsdl.Description {
	ops := []wsdl.Operation{
		{Name: "getLead", SOAPAction: "http://www.marketo.com/soap/mktows/getLead"},
		{Name: "syncLead", SOAPAction: "http://www.marketo.com/soap/mktows/syncLead"},
		{Name: "syncMultipleLeads"},
		{Name: "requestCampaign"},
		{Name: "mergeLeads"},
		{Name: "getLeadActivity"},
		{Name: "syncCustomObjects"},
		{Name: "syncMObjects"},
		{Name: "describeMObject"},
	}
	types := []string{
		"LeadRecord", "ArrayOfLeadRecord", "LeadKey", "ArrayOfLeadKey",
		"Attribute", "ArrayOfAttribute", "ArrayOfKeyList", "ActivityTypeFilter",
		"CustomObj", "ArrayOfCustomObj", "Attrib", "ArrayOfAttrib",
		"MObject", "ArrayOfMObject",
		"Widget", "GetLead",
	}
	return wsdl.NewDescription(endpoint, ops, types)
}

func newTestClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	client, err := New(context.Background(), &Config{
		Endpoint:      endpoint,
		UserID:        "demo17_1234",
		EncryptionKey: "secret",
		Description:   testDescription(endpoint),
	})
	require.NoError(t, err)
	return client
}

func TestResolve_TypeYieldsFreshInstances(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("LeadRecord")
	require.NoError(t, err)
	assert.Equal(t, KindType, member.Kind)

	first, err := member.NewInstance()
	require.NoError(t, err)
	second, err := member.NewInstance()
	require.NoError(t, err)

	firstRecord, ok := first.(*LeadRecord)
	require.True(t, ok)
	secondRecord, ok := second.(*LeadRecord)
	require.True(t, ok)

	firstRecord.Email = "a@b.com"
	assert.Empty(t, secondRecord.Email, "instances must be independent")
}

func TestResolve_UnmappedTypeYieldsGenericRecord(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("Widget")
	require.NoError(t, err)
	assert.Equal(t, KindType, member.Kind)

	first, err := member.NewInstance()
	require.NoError(t, err)
	second, err := member.NewInstance()
	require.NoError(t, err)

	firstRecord, ok := first.(*Record)
	require.True(t, ok)
	secondRecord, ok := second.(*Record)
	require.True(t, ok)

	assert.Equal(t, "Widget", firstRecord.TypeName)
	firstRecord.Set("color", "red")
	_, found := secondRecord.Get("color")
	assert.False(t, found, "instances must be independent")
}

func TestResolve_Operation(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("getLead")
	require.NoError(t, err)
	assert.Equal(t, KindOperation, member.Kind)

	_, err = member.NewInstance()
	assert.ErrorIs(t, err, ErrNotAType)

	_, err = member.Invoke(context.Background(), "only one arg")
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestResolve_StaticFallback(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("SyncLead")
	require.NoError(t, err)
	assert.Equal(t, KindStatic, member.Kind)

	_, err = member.Invoke(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestResolve_DeclaredTypeShadowsStaticMember(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	// The description declares a structured type named GetLead, so the
	// type wins over the static method of the same name.
	member, err := client.Resolve("GetLead")
	require.NoError(t, err)
	assert.Equal(t, KindType, member.Kind)
}

func TestResolve_Unknown(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	_, err := client.Resolve("noSuchMember")
	assert.ErrorIs(t, err, ErrUnknownMember)
}

func TestResolve_TypeIsNotCallable(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("LeadRecord")
	require.NoError(t, err)

	_, err = member.Invoke(context.Background())
	assert.ErrorIs(t, err, ErrNotCallable)
}

func TestResolve_StaticSkippedCategoryNeedsNoNetwork(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	member, err := client.Resolve("GetLeadActivity")
	require.NoError(t, err)

	result, err := member.Invoke(context.Background(), "cookie-123", "unknown-category")
	require.NoError(t, err)

	activity, ok := result.(*LeadActivityResult)
	require.True(t, ok)
	assert.True(t, activity.Skipped)
}

func TestNew_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := New(ctx, nil)
	assert.Error(t, err)

	_, err = New(ctx, &Config{
		EncryptionKey: "secret",
		Description:   testDescription("https://example.invalid/soap"),
	})
	assert.Error(t, err, "missing user ID")

	_, err = New(ctx, &Config{
		UserID:      "demo17_1234",
		Description: testDescription("https://example.invalid/soap"),
	})
	assert.Error(t, err, "missing encryption key")

	// No endpoint anywhere.
	_, err = New(ctx, &Config{
		UserID:        "demo17_1234",
		EncryptionKey: "secret",
		Description:   testDescription(""),
	})
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

func TestNew_EndpointFromDescription(t *testing.T) {
	client, err := New(context.Background(), &Config{
		UserID:        "demo17_1234",
		EncryptionKey: "secret",
		Description:   testDescription("https://na-c.marketo.com/soap/mktows/2_3"),
		Clock:         func() time.Time { return time.Unix(0, 0) },
	})
	require.NoError(t, err)
	assert.Equal(t, "https://na-c.marketo.com/soap/mktows/2_3", client.Endpoint())
}

func TestCall_UnknownOperation(t *testing.T) {
	client := newTestClient(t, "https://example.invalid/soap")

	err := client.Call(context.Background(), "noSuchOperation", struct{}{}, &struct{}{})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
