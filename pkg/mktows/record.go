package mktows

import "encoding/xml"

// Field is one named value on a generic Record.
type Field struct {
	Name  string
	Value string
}

// Record is a generic instance of a structured type declared by the
// service description. Well-known types resolve to their dedicated Go
// structs; every other declared type resolves to a Record. Each
// resolution yields a fresh Record, so mutating one never affects
// another.
type Record struct {
	// TypeName is the declared structured-type name this record
	// instantiates.
	TypeName string

	fields []Field
}

// NewRecord creates an empty record of the given structured type.
func NewRecord(typeName string) *Record {
	return &Record{TypeName: typeName}
}

// Set assigns a field value, replacing an existing field of the same
// name in place or appending a new one. Field order is preserved.
func (r *Record) Set(name, value string) *Record {
	for i := range r.fields {
		if r.fields[i].Name == name {
			r.fields[i].Value = value
			return r
		}
	}
	r.fields = append(r.fields, Field{Name: name, Value: value})
	return r
}

// Get returns a field value and whether the field is present.
func (r *Record) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Fields returns a copy of the record's fields in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// MarshalXML encodes the record as an element named after its type with
// one child element per field, in insertion order.
func (r *Record) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Space: Namespace, Local: r.TypeName}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, f := range r.fields {
		elem := xml.StartElement{Name: xml.Name{Local: f.Name}}
		if err := e.EncodeElement(f.Value, elem); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
