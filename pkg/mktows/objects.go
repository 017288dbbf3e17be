package mktows

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Object operation errors
var (
	// ErrInvalidSyncOperation is returned when the operation kind is not
	// UPSERT, INSERT, or UPDATE.
	ErrInvalidSyncOperation = errors.New("invalid sync operation")

	// ErrUnknownMObjectType is returned when an M-Object sync names a
	// type other than Opportunity or OpportunityPersonRole.
	ErrUnknownMObjectType = errors.New("unknown M-Object type")
)

// M-Object types accepted by SyncMObjects.
const (
	MObjectOpportunity           = "Opportunity"
	MObjectOpportunityPersonRole = "OpportunityPersonRole"
)

// SyncCustomObjects creates or updates one custom object instance.
// objName names the custom object type, keys are its primary key pairs,
// and values its attribute pairs; order is preserved in both lists.
func (c *Client) SyncCustomObjects(ctx context.Context, objName string, keys, values []NameValue, operation SyncOperation) (*SuccessSyncCustomObjects, error) {
	if !operation.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSyncOperation, operation)
	}

	request := &ParamsSyncCustomObjects{
		ObjTypeName: objName,
		CustomObjList: ArrayOfCustomObj{
			CustomObjs: []CustomObj{BuildCustomObj(keys, values)},
		},
		Operation: operation,
	}

	var response SuccessSyncCustomObjects
	if err := c.Call(ctx, "syncCustomObjects", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// MObjectSync describes a syncMObjects dispatch. An Opportunity is first
// synced on its own; a follow-up OpportunityPersonRole sync connects it
// to a person.
type MObjectSync struct {
	// Type is MObjectOpportunity or MObjectOpportunityPersonRole.
	Type string

	// Operation defaults to OperationUpsert when empty.
	Operation SyncOperation

	// Fields are the object's attribute pairs, copied in order.
	Fields []NameValue

	// Exists marks an update of an opportunity already known to the
	// service, identified by ID. Only meaningful for Opportunity.
	Exists bool

	// ID is the existing opportunity's system ID.
	ID int
}

// SyncMObjects creates or updates one M-Object. For a new Opportunity
// and for OpportunityPersonRole every field pair is copied into the
// attrib list, preserving order; an existing Opportunity is addressed by
// ID instead.
func (c *Client) SyncMObjects(ctx context.Context, sync MObjectSync) (*SuccessSyncMObjects, error) {
	operation := sync.Operation
	if operation == "" {
		operation = OperationUpsert
	}
	if !operation.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSyncOperation, operation)
	}

	now := c.clock().UTC().Format(time.RFC3339)
	obj := MObject{Type: sync.Type, UpdatedAt: now}

	switch sync.Type {
	case MObjectOpportunity:
		if sync.Exists {
			obj.ID = sync.ID
		} else {
			obj.CreatedAt = now
			if len(sync.Fields) > 0 {
				obj.AttribList = &ArrayOfAttrib{Attribs: pairsToAttribs(sync.Fields)}
			}
		}
	case MObjectOpportunityPersonRole:
		if len(sync.Fields) > 0 {
			obj.AttribList = &ArrayOfAttrib{Attribs: pairsToAttribs(sync.Fields)}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMObjectType, sync.Type)
	}

	request := &ParamsSyncMObjects{
		MObjectList: ArrayOfMObject{MObjects: []MObject{obj}},
		Operation:   operation,
	}

	var response SuccessSyncMObjects
	if err := c.Call(ctx, "syncMObjects", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// DescribeMObject retrieves the field metadata of an M-Object type.
func (c *Client) DescribeMObject(ctx context.Context, objName string) (*SuccessDescribeMObject, error) {
	request := &ParamsDescribeMObject{ObjectName: objName}

	var response SuccessDescribeMObject
	if err := c.Call(ctx, "describeMObject", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
