package mktows

import (
	"context"
	"errors"
	"fmt"
)

// Resolution errors
var (
	// ErrUnknownMember is returned when a name matches no declared type,
	// no declared operation, and no static client member.
	ErrUnknownMember = errors.New("unknown member")

	// ErrNotCallable is returned when Invoke is called on a type member.
	ErrNotCallable = errors.New("member is not callable")

	// ErrNotAType is returned when NewInstance is called on a callable member.
	ErrNotAType = errors.New("member is not a structured type")

	// ErrInvalidArguments is returned when a static member is invoked
	// with arguments of the wrong shape.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// MemberKind classifies a resolved member.
type MemberKind int

// Member kinds, in resolution priority order.
const (
	// KindType yields fresh instances of a declared structured type.
	KindType MemberKind = iota
	// KindOperation dispatches a declared remote operation.
	KindOperation
	// KindStatic invokes a statically defined client method.
	KindStatic
)

// Member is the result of resolving a name against the client. Depending
// on its kind it either constructs instances or dispatches calls.
type Member struct {
	Name string
	Kind MemberKind

	newInstance func() interface{}
	invoke      func(ctx context.Context, args ...interface{}) (interface{}, error)
}

// NewInstance returns a fresh, independent, empty instance of the
// member's structured type.
func (m Member) NewInstance() (interface{}, error) {
	if m.newInstance == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotAType, m.Name)
	}
	return m.newInstance(), nil
}

// Invoke calls the member. Operation members expect (request, response)
// arguments where response is a pointer the reply is decoded into;
// static members expect the arguments of the underlying method.
func (m Member) Invoke(ctx context.Context, args ...interface{}) (interface{}, error) {
	if m.invoke == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, m.Name)
	}
	return m.invoke(ctx, args...)
}

// Resolve looks a name up against the client, in priority order:
//
//  1. structured-type names declared by the service description, which
//     yield fresh empty instances;
//  2. operation names declared by the service description, which yield
//     bound remote calls;
//  3. statically defined convenience methods on the client.
//
// A declared remote name therefore shadows a static member of the same
// name; that collision risk is the accepted cost of resolving remote
// names without per-name bindings.
func (c *Client) Resolve(name string) (Member, error) {
	if c.desc.HasType(name) {
		factory, ok := typeFactories[name]
		if !ok {
			typeName := name
			factory = func() interface{} { return NewRecord(typeName) }
		}
		return Member{Name: name, Kind: KindType, newInstance: factory}, nil
	}

	if c.desc.HasOperation(name) {
		operation := name
		return Member{
			Name: name,
			Kind: KindOperation,
			invoke: func(ctx context.Context, args ...interface{}) (interface{}, error) {
				if len(args) != 2 {
					return nil, fmt.Errorf("%w: %s expects (request, response)", ErrInvalidArguments, operation)
				}
				if err := c.Call(ctx, operation, args[0], args[1]); err != nil {
					return nil, err
				}
				return args[1], nil
			},
		}, nil
	}

	if member, ok := c.statics[name]; ok {
		return member, nil
	}

	return Member{}, fmt.Errorf("%w: %s", ErrUnknownMember, name)
}

// typeFactories maps well-known structured-type names to their dedicated
// Go structs. Declared types without an entry here fall back to generic
// Records.
var typeFactories = map[string]func() interface{}{
	"LeadRecord":         func() interface{} { return &LeadRecord{} },
	"ArrayOfLeadRecord":  func() interface{} { return &ArrayOfLeadRecord{} },
	"LeadKey":            func() interface{} { return &LeadKey{} },
	"ArrayOfLeadKey":     func() interface{} { return &ArrayOfLeadKey{} },
	"Attribute":          func() interface{} { return &Attribute{} },
	"ArrayOfAttribute":   func() interface{} { return &ArrayOfAttribute{} },
	"ArrayOfKeyList":     func() interface{} { return &ArrayOfKeyList{} },
	"ActivityTypeFilter": func() interface{} { return &ActivityTypeFilter{} },
	"CustomObj":          func() interface{} { return &CustomObj{} },
	"ArrayOfCustomObj":   func() interface{} { return &ArrayOfCustomObj{} },
	"Attrib":             func() interface{} { return &Attrib{} },
	"ArrayOfAttrib":      func() interface{} { return &ArrayOfAttrib{} },
	"MObject":            func() interface{} { return &MObject{} },
	"ArrayOfMObject":     func() interface{} { return &ArrayOfMObject{} },
}

// staticMembers builds the tier-3 adapter table exposing the client's
// convenience methods through Resolve.
func (c *Client) staticMembers() map[string]Member {
	adapt := func(name string, fn func(ctx context.Context, args ...interface{}) (interface{}, error)) Member {
		return Member{Name: name, Kind: KindStatic, invoke: fn}
	}

	badArgs := func(name, want string) error {
		return fmt.Errorf("%w: %s expects (%s)", ErrInvalidArguments, name, want)
	}

	return map[string]Member{
		"GetLead": adapt("GetLead", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, badArgs("GetLead", "keyValue string, keyType string")
			}
			keyValue, ok1 := args[0].(string)
			keyType, ok2 := args[1].(string)
			if !ok1 || !ok2 {
				return nil, badArgs("GetLead", "keyValue string, keyType string")
			}
			return c.GetLead(ctx, keyValue, keyType)
		}),
		"GetLeadByIDNum": adapt("GetLeadByIDNum", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, badArgs("GetLeadByIDNum", "idNum string")
			}
			idNum, ok := args[0].(string)
			if !ok {
				return nil, badArgs("GetLeadByIDNum", "idNum string")
			}
			return c.GetLeadByIDNum(ctx, idNum)
		}),
		"GetLeadByCookie": adapt("GetLeadByCookie", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, badArgs("GetLeadByCookie", "cookie string")
			}
			cookie, ok := args[0].(string)
			if !ok {
				return nil, badArgs("GetLeadByCookie", "cookie string")
			}
			return c.GetLeadByCookie(ctx, cookie)
		}),
		"SyncLead": adapt("SyncLead", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 3 {
				return nil, badArgs("SyncLead", "email string, attributes []Attribute, returnLead bool")
			}
			email, ok1 := args[0].(string)
			attrs, ok2 := args[1].([]Attribute)
			returnLead, ok3 := args[2].(bool)
			if !ok1 || !ok2 || !ok3 {
				return nil, badArgs("SyncLead", "email string, attributes []Attribute, returnLead bool")
			}
			return c.SyncLead(ctx, email, attrs, returnLead)
		}),
		"SyncMultipleLeads": adapt("SyncMultipleLeads", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, badArgs("SyncMultipleLeads", "leads []LeadInput, dedupEnabled bool")
			}
			leads, ok1 := args[0].([]LeadInput)
			dedup, ok2 := args[1].(bool)
			if !ok1 || !ok2 {
				return nil, badArgs("SyncMultipleLeads", "leads []LeadInput, dedupEnabled bool")
			}
			return c.SyncMultipleLeads(ctx, leads, dedup)
		}),
		"RequestCampaign": adapt("RequestCampaign", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, badArgs("RequestCampaign", "request CampaignRequest")
			}
			request, ok := args[0].(CampaignRequest)
			if !ok {
				return nil, badArgs("RequestCampaign", "request CampaignRequest")
			}
			return c.RequestCampaign(ctx, request)
		}),
		"MergeLeads": adapt("MergeLeads", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, badArgs("MergeLeads", "winningID string, losingIDs []string")
			}
			winning, ok1 := args[0].(string)
			losing, ok2 := args[1].([]string)
			if !ok1 || !ok2 {
				return nil, badArgs("MergeLeads", "winningID string, losingIDs []string")
			}
			return c.MergeLeads(ctx, winning, losing)
		}),
		"GetLeadActivity": adapt("GetLeadActivity", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, badArgs("GetLeadActivity", "cookie string, category string")
			}
			cookie, ok1 := args[0].(string)
			category, ok2 := args[1].(string)
			if !ok1 || !ok2 {
				return nil, badArgs("GetLeadActivity", "cookie string, category string")
			}
			return c.GetLeadActivity(ctx, cookie, category)
		}),
		"SyncCustomObjects": adapt("SyncCustomObjects", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 4 {
				return nil, badArgs("SyncCustomObjects", "objName string, keys []NameValue, values []NameValue, op SyncOperation")
			}
			objName, ok1 := args[0].(string)
			keys, ok2 := args[1].([]NameValue)
			values, ok3 := args[2].([]NameValue)
			op, ok4 := args[3].(SyncOperation)
			if !ok1 || !ok2 || !ok3 || !ok4 {
				return nil, badArgs("SyncCustomObjects", "objName string, keys []NameValue, values []NameValue, op SyncOperation")
			}
			return c.SyncCustomObjects(ctx, objName, keys, values, op)
		}),
		"SyncMObjects": adapt("SyncMObjects", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, badArgs("SyncMObjects", "sync MObjectSync")
			}
			sync, ok := args[0].(MObjectSync)
			if !ok {
				return nil, badArgs("SyncMObjects", "sync MObjectSync")
			}
			return c.SyncMObjects(ctx, sync)
		}),
		"DescribeMObject": adapt("DescribeMObject", func(ctx context.Context, args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, badArgs("DescribeMObject", "objName string")
			}
			objName, ok := args[0].(string)
			if !ok {
				return nil, badArgs("DescribeMObject", "objName string")
			}
			return c.DescribeMObject(ctx, objName)
		}),
	}
}
