// Package pagination normalizes AIP-158 style page parameters for gRPC list
// endpoints.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes. Non-positive
// requests fall back to the default, and the result is never below one.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// EncodeUint64Token renders a numeric cursor as a page token.
func EncodeUint64Token(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// ParseUint64Token reads a page token produced by EncodeUint64Token. A blank
// token reports ok false with no error so callers can treat it as the first
// page.
func ParseUint64Token(token string) (id uint64, ok bool, err error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false, nil
	}
	id, err = strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse page token: %w", err)
	}
	return id, true, nil
}
