// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity validates the national identifier (CPF) used as the natural
key for voters and ballots.

# Format

The only accepted form is the punctuated one:

	123.456.789-00

Three groups of three digits separated by dots, a hyphen and two digits.
Validate never rewrites its input; callers must send the punctuated form.

# Helpers

StripPunctuation returns the bare digit sequence:

	identity.StripPunctuation("123.456.789-00") // "12345678900"

Both functions are pure and safe for concurrent use.
*/
package identity
