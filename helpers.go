// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bintree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrInvalidToken is returned by ParseLevelOrder for a slot that is neither
// an integer of the target type nor null.
var ErrInvalidToken = errors.New("invalid level-order token")

// ParseLevelOrder reads a level-order sequence such as
// "[3, 9, 20, null, null, 15, 7]" or "3 9 20 -1 -1 15 7". Brackets are
// optional, slots are separated by commas and/or whitespace, and null maps
// to sentinel. Empty input yields an empty sequence.
func ParseLevelOrder[T constraints.Integer](s string, sentinel T) ([]T, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		if strings.EqualFold(tok, nullToken) {
			values = append(values, sentinel)
			continue
		}
		v, err := parseInteger[T](tok)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidToken, "slot %d %q: %v", i, tok, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseInteger parses tok as a base 10 integer and checks that it fits T.
func parseInteger[T constraints.Integer](tok string) (T, error) {
	var zero T
	if strings.HasPrefix(tok, "-") {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return zero, err
		}
		if v := T(i); int64(v) == i && (v < 0) == (i < 0) {
			return v, nil
		}
		return zero, errors.New("out of range")
	}
	u, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
	if err != nil {
		return zero, err
	}
	if v := T(u); uint64(v) == u && v >= 0 {
		return v, nil
	}
	return zero, errors.New("out of range")
}

// levelOrderKey encodes a sequence and its sentinel as a cache key.
func levelOrderKey[T constraints.Integer](values []T, sentinel T) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(int64(sentinel), 10))
	sb.WriteByte('|')
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		if v < 0 {
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		} else {
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		}
	}
	return sb.String()
}
