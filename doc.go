// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gomktows is a Go client for the Marketo MktoWs SOAP API.

# Overview

go-mktows wraps the vendor's SOAP marketing-automation API behind a small,
typed Go surface. It discovers the operations and structured types declared
by the service description (WSDL) at construction time, stamps every call
with a signed authentication header, and translates plain Go inputs into the
nested record structures the remote service expects. All SOAP envelope
construction, XML (de)serialization, and HTTP transport are delegated to
github.com/hooklift/gowsdl/soap.

# Package Structure

The library is organized into the following packages:

	github.com/sirosfoundation/go-mktows/pkg/mktows    - Main client API and request builders
	github.com/sirosfoundation/go-mktows/pkg/auth      - Request signing (HMAC-SHA1 authentication header)
	github.com/sirosfoundation/go-mktows/pkg/wsdl      - Service description fetching and introspection
	github.com/sirosfoundation/go-mktows/pkg/transport - TLS-configured HTTP client construction

# Quick Start

To sync a lead:

	import (
	    "github.com/sirosfoundation/go-mktows/pkg/mktows"
	)

	client, err := mktows.New(ctx, &mktows.Config{
	    Endpoint:      "https://na-c.marketo.com/soap/mktows/2_3",
	    UserID:        "demo17_1234567890ABCDEF",
	    EncryptionKey: os.Getenv("MKTOWS_ENCRYPTION_KEY"),
	})
	if err != nil {
	    log.Fatal(err)
	}

	result, err := client.SyncLead(ctx, "a@b.com", []mktows.Attribute{
	    {Name: "FirstName", Type: "string", Value: "Bob"},
	}, false)

# Authentication

Every request carries an AuthenticationHeader SOAP header containing the
current UTC timestamp, the user identifier, and an HMAC-SHA1 signature of
the two, keyed by the shared encryption key. The header is regenerated for
each call; credentials themselves are never transmitted.

# Error Handling

The client performs no retries. Construction fails immediately when the
service description is unreachable or malformed. Remote faults are returned
to the caller unmodified as the SOAP toolkit's fault error. Malformed local
input is reported as a construction error before any network activity.

# License

BSD-2-Clause License
*/
package gomktows
