// Package dedup detects content-duplicate job offers across feeds.
//
// Two offers with equal (normalised title, normalised company) are the
// same content regardless of URL or posting date. The fingerprint is a
// deterministic digest of that pair, used as the key in the Store.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"careerpilot/discovery-service/internal/model"
)

// Fingerprint computes the content digest for a job. Title and company are
// lower-cased and trimmed first so fingerprints survive cosmetic feed
// differences. The separator byte keeps ("ab","c") and ("a","bc") apart.
func Fingerprint(j model.Job) string {
	h := sha256.New()
	h.Write([]byte(canon(j.Title)))
	h.Write([]byte{0})
	h.Write([]byte(canon(j.Company)))
	return hex.EncodeToString(h.Sum(nil))
}

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
