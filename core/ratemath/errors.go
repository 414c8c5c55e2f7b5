package ratemath

import "errors"

var errFundingStreamsExceedCap = errors.New("ratemath: funding stream rates exceed 10000bps")
