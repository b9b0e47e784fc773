// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package tree

import "github.com/tailscale/hujson"

// NormalizeStrict rewrites input -- which may carry JWCC extensions such
// as comments and trailing commas -- into standard JSON bytes suitable
// for a strict-mode Parser, or an encoding/json.Decoder. It is a fast
// path for input that is expected to be well-formed JWCC; on malformed
// input, prefer the fault-tolerant Parser's ConvertPythonTokens/
// AllowComments/AllowTrailingComma options instead.
func NormalizeStrict(input []byte) ([]byte, error) {
	return hujson.Standardize(input)
}
