package wsdl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/beevik/etree"
)

// Description errors
var (
	// ErrMalformedDescription is returned when the service description
	// cannot be parsed or declares no operations.
	ErrMalformedDescription = errors.New("malformed service description")

	// ErrDescriptionUnavailable is returned when the service description
	// cannot be fetched.
	ErrDescriptionUnavailable = errors.New("service description unavailable")
)

// Operation is a single remote operation declared by the service
// description, together with its SOAP action.
type Operation struct {
	Name       string
	SOAPAction string
}

// Description holds the metadata a service description (WSDL) declares:
// the operation names, the structured-type names, the SOAP actions, and
// the endpoint address. It is fetched once and read-only afterwards.
type Description struct {
	// TargetNamespace is the schema namespace the service declares.
	TargetNamespace string

	endpoint   string
	operations map[string]Operation
	types      map[string]struct{}
}

// NewDescription builds a Description from already-known metadata. Parse
// uses it internally; tests use it to avoid network fetches.
func NewDescription(endpoint string, operations []Operation, typeNames []string) *Description {
	d := &Description{
		endpoint:   endpoint,
		operations: make(map[string]Operation, len(operations)),
		types:      make(map[string]struct{}, len(typeNames)),
	}
	for _, op := range operations {
		d.operations[op.Name] = op
	}
	for _, name := range typeNames {
		d.types[name] = struct{}{}
	}
	return d
}

// Endpoint returns the service address declared by the description, or ""
// when none was declared.
func (d *Description) Endpoint() string {
	return d.endpoint
}

// HasOperation reports whether the description declares the operation.
func (d *Description) HasOperation(name string) bool {
	_, ok := d.operations[name]
	return ok
}

// HasType reports whether the description declares the structured type.
func (d *Description) HasType(name string) bool {
	_, ok := d.types[name]
	return ok
}

// SOAPAction returns the SOAP action for a declared operation.
func (d *Description) SOAPAction(name string) (string, bool) {
	op, ok := d.operations[name]
	if !ok {
		return "", false
	}
	return op.SOAPAction, true
}

// Operations returns the declared operation names in sorted order.
func (d *Description) Operations() []string {
	names := make([]string, 0, len(d.operations))
	for name := range d.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Types returns the declared structured-type names in sorted order.
func (d *Description) Types() []string {
	names := make([]string, 0, len(d.types))
	for name := range d.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse parses a WSDL document into a Description.
//
// Only the metadata the client needs is extracted: portType operation
// names, binding SOAP actions, schema type names, and the service port
// address. Namespace prefixes vary between vendors, so elements are
// matched by local name.
func Parse(data []byte) (*Description, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescription, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "definitions" {
		return nil, fmt.Errorf("%w: root element is not definitions", ErrMalformedDescription)
	}

	d := &Description{
		TargetNamespace: root.SelectAttrValue("targetNamespace", ""),
		operations:      make(map[string]Operation),
		types:           make(map[string]struct{}),
	}

	// Structured types from the inline schema.
	for _, types := range childrenByTag(root, "types") {
		for _, schema := range childrenByTag(types, "schema") {
			for _, child := range schema.ChildElements() {
				switch child.Tag {
				case "complexType", "simpleType":
					if name := child.SelectAttrValue("name", ""); name != "" {
						d.types[name] = struct{}{}
					}
				}
			}
		}
	}

	// Operation names from the portType.
	for _, portType := range childrenByTag(root, "portType") {
		for _, op := range childrenByTag(portType, "operation") {
			if name := op.SelectAttrValue("name", ""); name != "" {
				d.operations[name] = Operation{Name: name}
			}
		}
	}

	// SOAP actions from the binding.
	for _, binding := range childrenByTag(root, "binding") {
		for _, op := range childrenByTag(binding, "operation") {
			name := op.SelectAttrValue("name", "")
			existing, ok := d.operations[name]
			if !ok {
				continue
			}
			for _, soapOp := range childrenByTag(op, "operation") {
				if action := soapOp.SelectAttrValue("soapAction", ""); action != "" {
					existing.SOAPAction = action
					d.operations[name] = existing
				}
			}
		}
	}

	// Endpoint address from the service port.
	for _, service := range childrenByTag(root, "service") {
		for _, port := range childrenByTag(service, "port") {
			for _, address := range childrenByTag(port, "address") {
				if location := address.SelectAttrValue("location", ""); location != "" {
					d.endpoint = location
				}
			}
		}
	}

	if len(d.operations) == 0 {
		return nil, fmt.Errorf("%w: no operations declared", ErrMalformedDescription)
	}

	return d, nil
}

// childrenByTag returns the child elements with the given local name,
// ignoring namespace prefixes.
func childrenByTag(parent *etree.Element, tag string) []*etree.Element {
	var matched []*etree.Element
	for _, child := range parent.ChildElements() {
		if child.Tag == tag {
			matched = append(matched, child)
		}
	}
	return matched
}
