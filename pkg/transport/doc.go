// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package transport builds TLS-configured HTTP clients for MktoWs traffic.

The package owns no request logic of its own; it constructs *http.Client
values with a TLS 1.2/1.3 floor, the recommended cipher suites, and sane
timeouts. The same client is shared by the service description fetch and
the SOAP toolkit, so timeout behavior is uniform across the library.

	httpClient := transport.NewHTTPClient(transport.DefaultConfig())
*/
package transport
