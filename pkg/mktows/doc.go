// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package mktows provides the main client API for the MktoWs SOAP service.

The client is a thin facade: it caches the service description fetched at
construction, stamps every call with a freshly signed authentication
header, and builds the nested record structures the remote operations
expect from plain Go inputs. SOAP envelope construction, XML
(de)serialization, and HTTP transport belong to
github.com/hooklift/gowsdl/soap.

# Dynamic Member Resolution

Remote names are resolved without per-name bindings through [Client.Resolve],
in priority order:

 1. A declared structured-type name yields a fresh, independent, empty
    instance (a dedicated struct such as [LeadRecord] for well-known
    names, a generic [Record] otherwise).
 2. A declared operation name yields a callable bound to that remote
    operation.
 3. Anything else falls back to the statically defined convenience
    methods.

A remote name therefore shadows a static member of the same name. That
collision risk is accepted in exchange for using remote names as if they
were native members.

# Convenience Operations

Each convenience method builds a typed request and dispatches it:

	result, err := client.SyncLead(ctx, "a@b.com", []mktows.Attribute{
	    {Name: "FirstName", Type: "string", Value: "Bob"},
	}, false)

	activity, err := client.GetLeadActivity(ctx, cookie, mktows.CategoryScore)

# Failure Semantics

There are no local retries. Remote faults propagate to the caller
unmodified as the SOAP toolkit's fault error. Malformed local input is
reported as a construction error before any network activity, including
in [Client.MergeLeads].
*/
package mktows
