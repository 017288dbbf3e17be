package mktows

import "encoding/xml"

// Namespace is the MktoWs schema namespace all request and response
// elements live in.
const Namespace = "http://www.marketo.com/mktows/"

// LeadKeyType identifies how a lead key value should be interpreted.
type LeadKeyType string

// Lead key types
const (
	LeadKeyEmail  LeadKeyType = "EMAIL"
	LeadKeyCookie LeadKeyType = "COOKIE"
	LeadKeyIDNum  LeadKeyType = "IDNUM"
)

// SyncOperation selects how a custom object or M-Object sync is applied.
type SyncOperation string

// Sync operations
const (
	OperationUpsert SyncOperation = "UPSERT"
	OperationInsert SyncOperation = "INSERT"
	OperationUpdate SyncOperation = "UPDATE"
)

// Valid reports whether the sync operation is one the service accepts.
func (op SyncOperation) Valid() bool {
	switch op {
	case OperationUpsert, OperationInsert, OperationUpdate:
		return true
	}
	return false
}

// Attribute is a single (name, type, value) triple on a lead record or
// token list. Type is optional for name/value uses.
type Attribute struct {
	Name  string `xml:"attrName"`
	Type  string `xml:"attrType,omitempty"`
	Value string `xml:"attrValue"`
}

// NameValue is a plain name/value input pair used by the custom object
// and M-Object builders.
type NameValue struct {
	Name  string
	Value string
}

// ArrayOfAttribute wraps a list of attributes.
type ArrayOfAttribute struct {
	Attributes []Attribute `xml:"attribute"`
}

// ArrayOfKeyList wraps a list of attribute lists, used for the losing
// side of a lead merge.
type ArrayOfKeyList struct {
	KeyLists []ArrayOfAttribute `xml:"keyList"`
}

// LeadKey identifies a lead by one of its keys.
type LeadKey struct {
	KeyType  LeadKeyType `xml:"keyType"`
	KeyValue string      `xml:"keyValue"`
}

// ArrayOfLeadKey wraps a list of lead keys.
type ArrayOfLeadKey struct {
	LeadKeys []LeadKey `xml:"leadKey"`
}

// LeadRecord is a contact record in the remote marketing system.
type LeadRecord struct {
	ID                int64             `xml:"Id,omitempty"`
	Email             string            `xml:"Email,omitempty"`
	LeadAttributeList *ArrayOfAttribute `xml:"leadAttributeList,omitempty"`
}

// ArrayOfLeadRecord wraps a list of lead records.
type ArrayOfLeadRecord struct {
	LeadRecords []LeadRecord `xml:"leadRecord"`
}

// LeadInput is the plain input for one lead in a multi-lead sync.
type LeadInput struct {
	Email      string
	Attributes []Attribute
}

// ArrayOfActivityType wraps a list of activity type tokens.
type ArrayOfActivityType struct {
	ActivityTypes []string `xml:"activityType"`
}

// ActivityTypeFilter restricts which activity types a lead activity
// query returns.
type ActivityTypeFilter struct {
	IncludeTypes *ArrayOfActivityType `xml:"includeTypes,omitempty"`
	ExcludeTypes *ArrayOfActivityType `xml:"excludeTypes,omitempty"`
}

// ActivityRecord is one activity entry in a lead activity result.
type ActivityRecord struct {
	ID                  int64             `xml:"id,omitempty"`
	ActivityDateTime    string            `xml:"activityDateTime,omitempty"`
	ActivityType        string            `xml:"activityType,omitempty"`
	MktgAssetName       string            `xml:"mktgAssetName,omitempty"`
	ActivityAttributes  *ArrayOfAttribute `xml:"activityAttributes,omitempty"`
	MktPersonID         string            `xml:"mktPersonId,omitempty"`
	ForeignSysID        string            `xml:"foreignSysId,omitempty"`
	PersonName          string            `xml:"personName,omitempty"`
	OrgName             string            `xml:"orgName,omitempty"`
	ForeignSysOrgID     string            `xml:"foreignSysOrgId,omitempty"`
	Campaign            string            `xml:"campaign,omitempty"`
}

// ArrayOfActivityRecord wraps a list of activity records.
type ArrayOfActivityRecord struct {
	ActivityRecords []ActivityRecord `xml:"activityRecord"`
}

// CustomObj is a vendor-defined extensible record with separate key and
// value attribute lists.
type CustomObj struct {
	KeyList       *ArrayOfAttribute `xml:"customObjKeyList,omitempty"`
	AttributeList *ArrayOfAttribute `xml:"customObjAttributeList,omitempty"`
}

// ArrayOfCustomObj wraps a list of custom objects.
type ArrayOfCustomObj struct {
	CustomObjs []CustomObj `xml:"customObj"`
}

// Attrib is a plain name/value attribute on an M-Object.
type Attrib struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// ArrayOfAttrib wraps a list of M-Object attributes.
type ArrayOfAttrib struct {
	Attribs []Attrib `xml:"attrib"`
}

// MObject is a vendor-defined marketing object such as an Opportunity.
type MObject struct {
	Type       string         `xml:"type"`
	ID         int            `xml:"id,omitempty"`
	CreatedAt  string         `xml:"createdAt,omitempty"`
	UpdatedAt  string         `xml:"updatedAt,omitempty"`
	AttribList *ArrayOfAttrib `xml:"attribList,omitempty"`
}

// ArrayOfMObject wraps a list of M-Objects.
type ArrayOfMObject struct {
	MObjects []MObject `xml:"mObject"`
}

// MObjFieldMetadata describes one field of an M-Object type.
type MObjFieldMetadata struct {
	Name        string `xml:"name"`
	Description string `xml:"description,omitempty"`
	DataType    string `xml:"dataType,omitempty"`
	Length      int    `xml:"length,omitempty"`
	IsPrimary   bool   `xml:"isPrimaryKey,omitempty"`
	IsCustom    bool   `xml:"isCustom,omitempty"`
}

// MObjectMetadata describes an M-Object type.
type MObjectMetadata struct {
	Name        string              `xml:"name"`
	Description string              `xml:"description,omitempty"`
	Fields      []MObjFieldMetadata `xml:"fieldList>field"`
}

// SyncStatus reports the outcome for one record of a sync operation.
type SyncStatus struct {
	LeadID int64  `xml:"leadId"`
	Status string `xml:"status"`
	Error  string `xml:"error,omitempty"`
}

// Request parameter elements. Each maps onto the body element of one
// remote operation; field order follows the vendor schema.

// ParamsGetLead is the request body for getLead.
type ParamsGetLead struct {
	XMLName xml.Name `xml:"http://www.marketo.com/mktows/ paramsGetLead"`
	LeadKey LeadKey  `xml:"leadKey"`
}

// ParamsSyncLead is the request body for syncLead.
type ParamsSyncLead struct {
	XMLName       xml.Name   `xml:"http://www.marketo.com/mktows/ paramsSyncLead"`
	LeadRecord    LeadRecord `xml:"leadRecord"`
	ReturnLead    bool       `xml:"returnLead"`
	MarketoCookie string     `xml:"marketoCookie,omitempty"`
}

// ParamsSyncMultipleLeads is the request body for syncMultipleLeads.
type ParamsSyncMultipleLeads struct {
	XMLName        xml.Name          `xml:"http://www.marketo.com/mktows/ paramsSyncMultipleLeads"`
	LeadRecordList ArrayOfLeadRecord `xml:"leadRecordList"`
	DedupEnabled   bool              `xml:"dedupEnabled"`
}

// ParamsRequestCampaign is the request body for requestCampaign.
type ParamsRequestCampaign struct {
	XMLName          xml.Name          `xml:"http://www.marketo.com/mktows/ paramsRequestCampaign"`
	Source           string            `xml:"source"`
	CampaignID       int               `xml:"campaignId,omitempty"`
	LeadList         *ArrayOfLeadKey   `xml:"leadList,omitempty"`
	ProgramName      string            `xml:"programName,omitempty"`
	CampaignName     string            `xml:"campaignName,omitempty"`
	ProgramTokenList *ArrayOfAttribute `xml:"programTokenList,omitempty"`
}

// ParamsMergeLeads is the request body for mergeLeads.
type ParamsMergeLeads struct {
	XMLName            xml.Name         `xml:"http://www.marketo.com/mktows/ paramsMergeLeads"`
	WinningLeadKeyList ArrayOfAttribute `xml:"winningLeadKeyList"`
	LosingLeadKeyLists ArrayOfKeyList   `xml:"losingLeadKeyLists"`
}

// ParamsGetLeadActivity is the request body for getLeadActivity.
type ParamsGetLeadActivity struct {
	XMLName        xml.Name            `xml:"http://www.marketo.com/mktows/ paramsGetLeadActivity"`
	LeadKey        LeadKey             `xml:"leadKey"`
	ActivityFilter *ActivityTypeFilter `xml:"activityFilter,omitempty"`
	StartPosition  int                 `xml:"startPosition,omitempty"`
	BatchSize      int                 `xml:"batchSize,omitempty"`
}

// ParamsSyncCustomObjects is the request body for syncCustomObjects.
type ParamsSyncCustomObjects struct {
	XMLName       xml.Name         `xml:"http://www.marketo.com/mktows/ paramsSyncCustomObjects"`
	ObjTypeName   string           `xml:"objTypeName"`
	CustomObjList ArrayOfCustomObj `xml:"customObjList"`
	Operation     SyncOperation    `xml:"operation"`
}

// ParamsSyncMObjects is the request body for syncMObjects.
type ParamsSyncMObjects struct {
	XMLName     xml.Name       `xml:"http://www.marketo.com/mktows/ paramsSyncMObjects"`
	MObjectList ArrayOfMObject `xml:"mObjectList"`
	Operation   SyncOperation  `xml:"operation"`
}

// ParamsDescribeMObject is the request body for describeMObject.
type ParamsDescribeMObject struct {
	XMLName    xml.Name `xml:"http://www.marketo.com/mktows/ paramsDescribeMObject"`
	ObjectName string   `xml:"objectName"`
}

// Response elements. The remote service wraps each result in a
// success<Operation> element; faults arrive as SOAP faults and are
// surfaced by the SOAP toolkit as errors.

// SuccessGetLead is the response body for getLead.
type SuccessGetLead struct {
	XMLName xml.Name      `xml:"http://www.marketo.com/mktows/ successGetLead"`
	Result  ResultGetLead `xml:"result"`
}

// ResultGetLead carries the matched lead records.
type ResultGetLead struct {
	Count          int                `xml:"count"`
	LeadRecordList *ArrayOfLeadRecord `xml:"leadRecordList,omitempty"`
}

// SuccessSyncLead is the response body for syncLead.
type SuccessSyncLead struct {
	XMLName xml.Name       `xml:"http://www.marketo.com/mktows/ successSyncLead"`
	Result  ResultSyncLead `xml:"result"`
}

// ResultSyncLead carries the synced lead's ID and status.
type ResultSyncLead struct {
	LeadID     int64       `xml:"leadId"`
	SyncStatus SyncStatus  `xml:"syncStatus"`
	LeadRecord *LeadRecord `xml:"leadRecord,omitempty"`
}

// SuccessSyncMultipleLeads is the response body for syncMultipleLeads.
type SuccessSyncMultipleLeads struct {
	XMLName xml.Name                `xml:"http://www.marketo.com/mktows/ successSyncMultipleLeads"`
	Result  ResultSyncMultipleLeads `xml:"result"`
}

// ResultSyncMultipleLeads carries per-record sync statuses.
type ResultSyncMultipleLeads struct {
	SyncStatusList []SyncStatus `xml:"syncStatusList>syncStatus"`
}

// SuccessRequestCampaign is the response body for requestCampaign.
type SuccessRequestCampaign struct {
	XMLName xml.Name              `xml:"http://www.marketo.com/mktows/ successRequestCampaign"`
	Result  ResultRequestCampaign `xml:"result"`
}

// ResultRequestCampaign reports whether the campaign request was accepted.
type ResultRequestCampaign struct {
	Success bool `xml:"success"`
}

// SuccessMergeLeads is the response body for mergeLeads.
type SuccessMergeLeads struct {
	XMLName xml.Name         `xml:"http://www.marketo.com/mktows/ successMergeLeads"`
	Result  ResultMergeLeads `xml:"result"`
}

// ResultMergeLeads reports the surviving lead of a merge.
type ResultMergeLeads struct {
	WinningLeadID int64  `xml:"winningLeadId"`
	Status        string `xml:"mergeStatus,omitempty"`
}

// SuccessGetLeadActivity is the response body for getLeadActivity.
type SuccessGetLeadActivity struct {
	XMLName          xml.Name         `xml:"http://www.marketo.com/mktows/ successGetLeadActivity"`
	LeadActivityList LeadActivityList `xml:"leadActivityList"`
}

// LeadActivityList carries a page of activity records.
type LeadActivityList struct {
	ReturnCount        int                    `xml:"returnCount"`
	RemainingCount     int                    `xml:"remainingCount"`
	ActivityRecordList *ArrayOfActivityRecord `xml:"activityRecordList,omitempty"`
}

// SuccessSyncCustomObjects is the response body for syncCustomObjects.
type SuccessSyncCustomObjects struct {
	XMLName xml.Name                `xml:"http://www.marketo.com/mktows/ successSyncCustomObjects"`
	Result  ResultSyncCustomObjects `xml:"result"`
}

// ResultSyncCustomObjects carries per-object sync statuses.
type ResultSyncCustomObjects struct {
	SyncStatusList []SyncStatus `xml:"syncStatusList>syncStatus"`
}

// SuccessSyncMObjects is the response body for syncMObjects.
type SuccessSyncMObjects struct {
	XMLName xml.Name          `xml:"http://www.marketo.com/mktows/ successSyncMObjects"`
	Result  ResultSyncMObjects `xml:"result"`
}

// MObjStatus reports the outcome for one M-Object of a sync.
type MObjStatus struct {
	ID     int    `xml:"id"`
	Status string `xml:"status"`
	Error  string `xml:"error,omitempty"`
}

// ResultSyncMObjects carries per-object statuses.
type ResultSyncMObjects struct {
	MObjStatusList []MObjStatus `xml:"mObjStatusList>mObjStatus"`
}

// SuccessDescribeMObject is the response body for describeMObject.
type SuccessDescribeMObject struct {
	XMLName xml.Name              `xml:"http://www.marketo.com/mktows/ successDescribeMObject"`
	Result  ResultDescribeMObject `xml:"result"`
}

// ResultDescribeMObject carries the described type's metadata.
type ResultDescribeMObject struct {
	Metadata MObjectMetadata `xml:"metadata"`
}
