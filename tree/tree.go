// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

// Package tree implements traversal utilities over an already-parsed
// flexjson.Value: pretty-printing, minification, key sorting,
// flattening, structural diffing, dot-path lookups, size/type
// statistics, and null stripping. None of these re-parse or otherwise
// touch the reader's own recovery logic.
package tree
