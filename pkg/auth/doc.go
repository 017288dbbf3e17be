// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package auth implements request authentication for the MktoWs SOAP API.

Every MktoWs call carries an AuthenticationHeader SOAP header containing
the request timestamp, the API user ID, and a request signature:

	signature = lowercase-hex( HMAC-SHA1( timestamp + userID, encryptionKey ) )

The timestamp must be current, so a [Signer] generates a new [Header] per
request rather than caching one.

# Usage

	signer, err := auth.NewSigner(userID, encryptionKey)
	if err != nil {
	    return err
	}
	header := signer.Sign()
	soapClient.SetHeaders(header)

A custom clock can be injected with [WithClock], which tests use to pin the
timestamp.
*/
package auth
