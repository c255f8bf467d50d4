package deployer

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	"github.com/itchyny/gojq"
)

const addressHexLen = 40

var addressQuery, _ = gojq.Parse(".. | .address? // empty")

// ExtractAddress scans deploy tool output line by line for a contract address.
// Qualifying lines contain "deployed" or "address" (case-insensitive) and a
// "0x" marker; the candidate is the token following "0x", truncated to 40 hex
// characters. Lines whose candidate is not a valid address are skipped. This
// is a best-effort heuristic over free-form tool output, not a parse.
func ExtractAddress(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "deployed") && !strings.Contains(lower, "address") {
			continue
		}

		idx := strings.Index(line, "0x")
		if idx < 0 {
			continue
		}

		token := line[idx+2:]
		if sp := strings.IndexFunc(token, unicode.IsSpace); sp >= 0 {
			token = token[:sp]
		}
		if len(token) > addressHexLen {
			token = token[:addressHexLen]
		}

		candidate := "0x" + token
		if common.IsHexAddress(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// addressFromJSON extracts a contract address from structured (JSON) deploy
// output, wherever the tool chose to nest it.
func addressFromJSON(output string) (string, bool) {
	var doc interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &doc); err != nil {
		return "", false
	}

	iter := addressQuery.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if _, isErr := v.(error); isErr {
			continue
		}

		if s, isStr := v.(string); isStr && common.IsHexAddress(s) {
			return s, true
		}
	}

	return "", false
}
