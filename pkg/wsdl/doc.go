// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package wsdl fetches and introspects the MktoWs service description.

The client does not generate code from the WSDL; it only extracts the
metadata needed for dynamic member resolution: the declared operation
names with their SOAP actions, the declared structured-type names, and
the service endpoint address. The resulting [Description] is fetched once
at client construction and is read-only afterwards.

# Usage

	desc, err := wsdl.NewClient().Fetch(ctx, "http://app.marketo.com/soap/mktows/2_3?WSDL")
	if err != nil {
	    return err
	}
	if desc.HasOperation("getLead") {
	    action, _ := desc.SOAPAction("getLead")
	    ...
	}

A fetch or parse failure is reported immediately; the package performs no
retries.
*/
package wsdl
