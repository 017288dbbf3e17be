package wsdl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleWSDL = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"
             xmlns:soap="http://schemas.xmlsoap.org/wsdl/soap/"
             xmlns:xsd="http://www.w3.org/2001/XMLSchema"
             xmlns:tns="http://www.marketo.com/mktows/"
             targetNamespace="http://www.marketo.com/mktows/">
  <types>
    <xsd:schema targetNamespace="http://www.marketo.com/mktows/">
      <xsd:complexType name="LeadRecord">
        <xsd:sequence>
          <xsd:element name="Email" type="xsd:string"/>
        </xsd:sequence>
      </xsd:complexType>
      <xsd:complexType name="LeadKey"/>
      <xsd:complexType name="ArrayOfAttribute"/>
      <xsd:simpleType name="LeadKeyRef">
        <xsd:restriction base="xsd:string"/>
      </xsd:simpleType>
      <xsd:element name="paramsGetLead"/>
    </xsd:schema>
  </types>
  <portType name="MktowsApiSoapPort">
    <operation name="getLead">
      <input message="tns:getLeadRequest"/>
      <output message="tns:getLeadResponse"/>
    </operation>
    <operation name="syncLead">
      <input message="tns:syncLeadRequest"/>
      <output message="tns:syncLeadResponse"/>
    </operation>
  </portType>
  <binding name="MktowsApiSoapBinding" type="tns:MktowsApiSoapPort">
    <soap:binding style="document" transport="http://schemas.xmlsoap.org/soap/http"/>
    <operation name="getLead">
      <soap:operation soapAction="http://www.marketo.com/soap/mktows/getLead"/>
    </operation>
    <operation name="syncLead">
      <soap:operation soapAction="http://www.marketo.com/soap/mktows/syncLead"/>
    </operation>
  </binding>
  <service name="MktMktowsApiService">
    <port name="MktowsApiSoapPort" binding="tns:MktowsApiSoapBinding">
      <soap:address location="https://na-c.marketo.com/soap/mktows/2_3"/>
    </port>
  </service>
</definitions>`

func TestParse(t *testing.T) {
	desc, err := Parse([]byte(sampleWSDL))
	require.NoError(t, err)

	assert.Equal(t, "http://www.marketo.com/mktows/", desc.TargetNamespace)
	assert.Equal(t, "https://na-c.marketo.com/soap/mktows/2_3", desc.Endpoint())

	assert.Equal(t, []string{"getLead", "syncLead"}, desc.Operations())
	assert.True(t, desc.HasOperation("getLead"))
	assert.False(t, desc.HasOperation("mergeLeads"))

	// simpleType and complexType names are both structured types;
	// top-level elements are not.
	assert.Equal(t, []string{"ArrayOfAttribute", "LeadKey", "LeadKeyRef", "LeadRecord"}, desc.Types())
	assert.False(t, desc.HasType("paramsGetLead"))

	action, ok := desc.SOAPAction("getLead")
	require.True(t, ok)
	assert.Equal(t, "http://www.marketo.com/soap/mktows/getLead", action)

	_, ok = desc.SOAPAction("mergeLeads")
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not XML", data: "this is not xml <<<"},
		{name: "empty document", data: ""},
		{name: "wrong root element", data: `<?xml version="1.0"?><html><body/></html>`},
		{
			name: "no operations",
			data: `<?xml version="1.0"?><definitions xmlns="http://schemas.xmlsoap.org/wsdl/"><portType name="p"/></definitions>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedDescription)
		})
	}
}

func TestNewDescription(t *testing.T) {
	desc := NewDescription("https://example.com/soap",
		[]Operation{{Name: "getLead", SOAPAction: "urn:getLead"}},
		[]string{"LeadRecord"})

	assert.Equal(t, "https://example.com/soap", desc.Endpoint())
	assert.True(t, desc.HasOperation("getLead"))
	assert.True(t, desc.HasType("LeadRecord"))

	action, ok := desc.SOAPAction("getLead")
	require.True(t, ok)
	assert.Equal(t, "urn:getLead", action)
}

func TestClient_Fetch(t *testing.T) {
	var gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(sampleWSDL))
	}))
	defer server.Close()

	desc, err := NewClient().Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.True(t, desc.HasOperation("getLead"))
	assert.Equal(t, "text/xml, application/xml", gotAccept)
	assert.Equal(t, "go-mktows/1.0", gotUserAgent)
}

func TestClient_FetchErrors(t *testing.T) {
	t.Run("unreachable", func(t *testing.T) {
		_, err := NewClient().Fetch(context.Background(), "http://127.0.0.1:1/wsdl")
		assert.ErrorIs(t, err, ErrDescriptionUnavailable)
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewClient().Fetch(context.Background(), server.URL)
		assert.ErrorIs(t, err, ErrDescriptionUnavailable)
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<not-a-wsdl/>"))
		}))
		defer server.Close()

		_, err := NewClient().Fetch(context.Background(), server.URL)
		assert.ErrorIs(t, err, ErrMalformedDescription)
	})
}
