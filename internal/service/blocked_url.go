package service

import (
	"fmt"
	"net/url"
	"strconv"

	"visitcap/internal/model"
)

// Query parameter names read by the blocked page.
const (
	ParamSiteURL        = "siteUrl"
	ParamVisitCount     = "visitCount"
	ParamVisitLimit     = "visitLimit"
	ParamTimeInterval   = "timeInterval"
	ParamTimeUntilReset = "timeUntilReset"
)

// BuildBlockedURL encodes a block instruction as query parameters on base.
func BuildBlockedURL(base string, block model.BlockInstruction) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse blocked page url: %w", err)
	}

	q := u.Query()
	q.Set(ParamSiteURL, block.Pattern)
	q.Set(ParamVisitCount, strconv.Itoa(block.VisitCount))
	q.Set(ParamVisitLimit, strconv.Itoa(block.VisitLimit))
	q.Set(ParamTimeInterval, string(block.TimeInterval))
	q.Set(ParamTimeUntilReset, block.TimeUntilReset)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
