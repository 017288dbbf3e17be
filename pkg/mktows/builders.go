package mktows

// BuildLeadRecord constructs a lead record from an email address and an
// ordered list of attribute triples. Attribute order is preserved.
func BuildLeadRecord(email string, attributes []Attribute) LeadRecord {
	record := LeadRecord{Email: email}
	if len(attributes) == 0 {
		return record
	}

	list := &ArrayOfAttribute{Attributes: make([]Attribute, len(attributes))}
	copy(list.Attributes, attributes)
	record.LeadAttributeList = list
	return record
}

// BuildCustomObj constructs a custom object from its primary key pairs
// and value pairs. Pair order is preserved in both lists.
func BuildCustomObj(keys, values []NameValue) CustomObj {
	obj := CustomObj{}
	if len(keys) > 0 {
		obj.KeyList = &ArrayOfAttribute{Attributes: pairsToAttributes(keys)}
	}
	if len(values) > 0 {
		obj.AttributeList = &ArrayOfAttribute{Attributes: pairsToAttributes(values)}
	}
	return obj
}

// pairsToAttributes converts name/value pairs into attributes without a
// declared attribute type.
func pairsToAttributes(pairs []NameValue) []Attribute {
	attrs := make([]Attribute, len(pairs))
	for i, pair := range pairs {
		attrs[i] = Attribute{Name: pair.Name, Value: pair.Value}
	}
	return attrs
}

// pairsToAttribs converts name/value pairs into M-Object attribs.
func pairsToAttribs(pairs []NameValue) []Attrib {
	attribs := make([]Attrib, len(pairs))
	for i, pair := range pairs {
		attribs[i] = Attrib{Name: pair.Name, Value: pair.Value}
	}
	return attribs
}
