// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

/*
Package cap provides encoding and decoding of CAP(CAMEL Application Part)
parameters over ASN.1 BER.

The decoders follow the same pattern for every parameter: the contents are read
through a bounded ber.Reader, known context-specific tags are dispatched to typed
fields, everything else is skipped so that later protocol versions can add
fields, and mandatory fields are checked once the whole contents have been
consumed. The encoders always write fields in the order defined by the ASN.1
module, whatever order they were decoded in.

Decoded values are owned by the caller; no state is shared between calls.
*/
package cap
